package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	authorModel "blog-backend/internal/domains/author/model"
	postModel "blog-backend/internal/domains/post/model"
)

// recordFile is the YAML layout accepted by "blogctl check".
type recordFile struct {
	Authors []authorModel.CreateAuthorRequest `yaml:"authors"`
	Posts   []postModel.CreatePostRequest     `yaml:"posts"`
}

type checkResult struct {
	Record string        `json:"record"`
	OK     bool          `json:"ok"`
	Error  *fieldFailure `json:"error,omitempty"`
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.yaml>",
		Short: "Validate authors and posts from a YAML file without saving them",
		Long: `Validate every record in a YAML file. Author names are checked against
storage and against earlier authors in the same file. Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}

			var file recordFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			authorErrs, err := a.c.AuthorService.ValidateBatch(cmd.Context(), file.Authors)
			if err != nil {
				return err
			}
			postErrs := a.c.PostService.ValidateBatch(cmd.Context(), file.Posts)

			results := make([]checkResult, 0, len(authorErrs)+len(postErrs))
			results = appendResults(results, "authors", authorErrs)
			results = appendResults(results, "posts", postErrs)

			invalid := 0
			for _, r := range results {
				if !r.OK {
					invalid++
				}
			}

			if a.json() {
				if err := a.printJSON(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.OK {
						fmt.Fprintf(a.out, "%s: ok\n", r.Record)
					} else {
						fmt.Fprintf(a.out, "%s: %s\n", r.Record, r.Error)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d records invalid", invalid, len(results))
			}
			return nil
		},
	}
}

func appendResults(results []checkResult, kind string, errs []error) []checkResult {
	for i, err := range errs {
		r := checkResult{Record: fmt.Sprintf("%s[%d]", kind, i), OK: err == nil}
		if err != nil {
			f := describe(err)
			r.Error = &f
		}
		results = append(results, r)
	}
	return results
}
