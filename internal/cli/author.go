package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blog-backend/internal/domains/author/model"
)

func (a *app) newAuthorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Create or update authors",
	}
	cmd.AddCommand(a.newAuthorCreateCmd(), a.newAuthorUpdateCmd())
	return cmd
}

type authorFlags struct {
	name  string
	phone string
}

func (f *authorFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Author name (unique)")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number, 10 digits")
}

// values returns only the flags given on the command line.
func (f *authorFlags) values(cmd *cobra.Command) (name, phone *string) {
	if cmd.Flags().Changed("name") {
		name = &f.name
	}
	if cmd.Flags().Changed("phone") {
		phone = &f.phone
	}
	return name, phone
}

func (a *app) newAuthorCreateCmd() *cobra.Command {
	var flags authorFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, phone := flags.values(cmd)
			created, err := a.c.AuthorService.Create(cmd.Context(), &model.CreateAuthorRequest{
				Name:        name,
				PhoneNumber: phone,
			})
			if err != nil {
				return a.fail(err)
			}
			return a.printAuthor("Created", created)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *app) newAuthorUpdateCmd() *cobra.Command {
	var flags authorFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid author id %q: %w", args[0], err)
			}

			name, phone := flags.values(cmd)
			updated, err := a.c.AuthorService.Update(cmd.Context(), id, &model.UpdateAuthorRequest{
				Name:        name,
				PhoneNumber: phone,
			})
			if err != nil {
				return a.fail(err)
			}
			return a.printAuthor("Updated", updated)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *app) printAuthor(verb string, author *model.Author) error {
	if a.json() {
		return a.printJSON(author.ToResponse())
	}
	fmt.Fprintf(a.out, "%s author %s (%s)\n", verb, author.ID, author.Name)
	return nil
}
