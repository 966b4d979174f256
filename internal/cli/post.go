package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blog-backend/internal/domains/post/model"
)

func (a *app) newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create or update posts",
	}
	cmd.AddCommand(a.newPostCreateCmd(), a.newPostUpdateCmd())
	return cmd
}

type postFlags struct {
	title       string
	content     string
	contentFile string
	summary     string
	category    string
}

func (f *postFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Post title")
	cmd.Flags().StringVar(&f.content, "content", "", "Post body")
	cmd.Flags().StringVarP(&f.contentFile, "content-file", "f", "", "Read the post body from a file")
	cmd.Flags().StringVar(&f.summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&f.category, "category", "", "Fiction or Non-Fiction")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
}

// values returns only the flags given on the command line, in field order.
func (f *postFlags) values(cmd *cobra.Command) (title, content, summary, category *string, err error) {
	changed := cmd.Flags().Changed

	if changed("title") {
		title = &f.title
	}
	switch {
	case changed("content"):
		content = &f.content
	case changed("content-file"):
		data, err := os.ReadFile(f.contentFile)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("read content file %q: %w", f.contentFile, err)
		}
		s := string(data)
		content = &s
	}
	if changed("summary") {
		summary = &f.summary
	}
	if changed("category") {
		category = &f.category
	}
	return title, content, summary, category, nil
}

func (a *app) newPostCreateCmd() *cobra.Command {
	var flags postFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, content, summary, category, err := flags.values(cmd)
			if err != nil {
				return err
			}

			created, err := a.c.PostService.Create(cmd.Context(), &model.CreatePostRequest{
				Title:    title,
				Content:  content,
				Summary:  summary,
				Category: category,
			})
			if err != nil {
				return a.fail(err)
			}
			return a.printPost("Created", created)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *app) newPostUpdateCmd() *cobra.Command {
	var flags postFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid post id %q: %w", args[0], err)
			}

			title, content, summary, category, err := flags.values(cmd)
			if err != nil {
				return err
			}

			updated, err := a.c.PostService.Update(cmd.Context(), id, &model.UpdatePostRequest{
				Title:    title,
				Content:  content,
				Summary:  summary,
				Category: category,
			})
			if err != nil {
				return a.fail(err)
			}
			return a.printPost("Updated", updated)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *app) printPost(verb string, p *model.Post) error {
	if a.json() {
		return a.printJSON(p.ToResponse())
	}
	fmt.Fprintf(a.out, "%s post %s (%s)\n", verb, p.ID, p.Title)
	return nil
}
