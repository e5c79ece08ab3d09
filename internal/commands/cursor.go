package commands

import (
	"fmt"
	"strconv"

	"github.com/Alp4ka/sqlpager"
	"github.com/spf13/cobra"
)

type cursorOutput struct {
	Offset uint64 `json:"offset" yaml:"offset"`
	Cursor string `json:"cursor" yaml:"cursor"`
	text   string
}

func (o cursorOutput) Text() string {
	return o.text
}

// NewCursorCommand creates the command group converting offsets and tokens.
func NewCursorCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Encode and decode cursor tokens",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	encodeCmd := &cobra.Command{
		Use:   "encode [offset]",
		Short: "Encode an offset into a cursor token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid offset '%s': %w", args[0], err)
			}

			token := sqlpager.EncodeCursor(offset)

			return writeOutput(cmd.OutOrStdout(), output, cursorOutput{Offset: offset, Cursor: token, text: token})
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [cursor]",
		Short: "Decode a cursor token into an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := sqlpager.DecodeCursor(args[0])
			if err != nil {
				return fmt.Errorf("cannot decode cursor: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), output, cursorOutput{
				Offset: offset,
				Cursor: args[0],
				text:   strconv.FormatUint(offset, 10),
			})
		},
	}

	cmd.AddCommand(encodeCmd, decodeCmd)

	return cmd
}
