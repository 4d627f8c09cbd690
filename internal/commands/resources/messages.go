package resourcescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const reindexMessageType = "loopcms.resources.reindex"

// ReindexCommand rebuilds the resource index from the Markdown files under
// Directory. The previous index is replaced wholesale once the walk finishes.
type ReindexCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load resource files from.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ReindexCommand) Type() string { return reindexMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ReindexCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("loopcms.resources.reindex.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
