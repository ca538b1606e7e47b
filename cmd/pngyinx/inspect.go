package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-pngyinx"
)

type chunkInfo struct {
	Index      int    `json:"index"`
	Offset     int    `json:"offset"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        string `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

type textInfo struct {
	Type              string `json:"type"`
	Keyword           string `json:"keyword"`
	Language          string `json:"language,omitempty"`
	TranslatedKeyword string `json:"translated_keyword,omitempty"`
	Text              string `json:"text"`
	Compressed        bool   `json:"compressed"`
}

type validationResult struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

func (a *app) parseFile(path string) (*pngyinx.PNG, error) {
	b, err := a.readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := pngyinx.Parse(b, a.readOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func newPrintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "print PATH",
		Short:   "list the chunks of a PNG file",
		Example: "  pngyinx print cat.png\n  pngyinx print cat.png --format json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			infos := make([]chunkInfo, 0, p.Len())
			off := len(pngyinx.Signature)
			for i, c := range p.Chunks() {
				t := c.Type()
				infos = append(infos, chunkInfo{
					Index:      i,
					Offset:     off,
					Type:       t.String(),
					Length:     c.Length(),
					CRC:        fmt.Sprintf("%08x", c.CRC()),
					Critical:   t.IsCritical(),
					Public:     t.IsPublic(),
					SafeToCopy: t.IsSafeToCopy(),
				})
				off += c.Size()
			}
			w := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(w, infos)
			}
			tw := newTable(w)
			tw.AppendHeader(table.Row{"#", "OFFSET", "TYPE", "LENGTH", "CRC", "CRITICAL", "PUBLIC", "SAFE TO COPY"})
			for _, it := range infos {
				tw.AppendRow(table.Row{it.Index, it.Offset, it.Type, it.Length, it.CRC, it.Critical, it.Public, it.SafeToCopy})
			}
			tw.Render()
			return nil
		},
	}
}

func newTextCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "text PATH",
		Short:   "show the standard tEXt, zTXt and iTXt chunks",
		Example: "  pngyinx text cat.png",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			texts, err := p.TextChunks(a.readOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			infos := make([]textInfo, 0, len(texts))
			for _, tc := range texts {
				infos = append(infos, textInfo{
					Type:              tc.Type.String(),
					Keyword:           tc.Keyword,
					Language:          tc.Language,
					TranslatedKeyword: tc.TranslatedKeyword,
					Text:              tc.Text,
					Compressed:        tc.Compressed,
				})
			}
			w := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(w, infos)
			}
			tw := newTable(w)
			tw.AppendHeader(table.Row{"TYPE", "KEYWORD", "LANGUAGE", "TEXT"})
			for _, it := range infos {
				tw.AppendRow(table.Row{it.Type, it.Keyword, it.Language, it.Text})
			}
			tw.Render()
			return nil
		},
	}
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "validate PATH",
		Short:   "check the chunk layout of a PNG file",
		Example: "  pngyinx validate cat.png",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			res := validationResult{Path: args[0], Valid: true}
			verr := p.Validate()
			if verr != nil {
				res.Valid = false
				res.Issues = issues(verr)
			}

			w := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				if err := writeJSON(w, res); err != nil {
					return err
				}
			} else if res.Valid {
				color.New(color.FgGreen).Fprintf(w, "%s: valid\n", res.Path)
			} else {
				tw := newTable(w)
				tw.AppendHeader(table.Row{"ISSUE"})
				for _, is := range res.Issues {
					tw.AppendRow(table.Row{is})
				}
				tw.Render()
			}
			if !res.Valid {
				return fmt.Errorf("%s: %d issue(s) found", res.Path, len(res.Issues))
			}
			return nil
		},
	}
}

// issues flattens a joined error into one message per problem.
func issues(err error) []string {
	var out []string
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatUpper
	return tw
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
