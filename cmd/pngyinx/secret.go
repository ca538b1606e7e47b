package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-pngyinx"
)

func newEncodeCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encode PATH TYPE MESSAGE",
		Short: "hide MESSAGE in the PNG at PATH under chunk TYPE",
		Example: "  pngyinx encode cat.png ruSt 'meet at dawn'\n" +
			"  pngyinx encode cat.png ruSt 'meet at dawn' --out secret.png",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typ, message := args[0], args[1], args[2]
			in, err := a.readFile(path)
			if err != nil {
				return err
			}
			encoded, err := pngyinx.Encode(in, typ, message, a.writeOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dst := outputPath(path, out)
			if err := a.writeFile(dst, encoded); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": dst, "type": typ, "bytes": len(message)}).Info("message encoded")
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "secret stored in %s under %s\n", dst, typ)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result here instead of rewriting PATH")
	return cmd
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode PATH TYPE",
		Short:   "print the message stored under chunk TYPE",
		Example: "  pngyinx decode cat.png ruSt",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typ := args[0], args[1]
			in, err := a.readFile(path)
			if err != nil {
				return err
			}
			msg, err := pngyinx.Decode(in, typ, a.readOptions()...)
			if errors.Is(err, pngyinx.ErrChunkNotFound) {
				return fmt.Errorf("no message under %s in %s", typ, path)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			a.log.WithFields(logrus.Fields{"path": path, "type": typ}).Info("message decoded")
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "remove PATH TYPE",
		Short:   "delete the first chunk of TYPE",
		Example: "  pngyinx remove cat.png ruSt",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typ := args[0], args[1]
			in, err := a.readFile(path)
			if err != nil {
				return err
			}
			removed, err := pngyinx.Remove(in, typ, a.writeOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dst := outputPath(path, out)
			if err := a.writeFile(dst, removed); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": dst, "type": typ}).Info("message removed")
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "secret under %s removed from %s\n", typ, dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result here instead of rewriting PATH")
	return cmd
}

func outputPath(path, out string) string {
	if out != "" {
		return out
	}
	return path
}
