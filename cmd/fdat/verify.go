package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hornwitser/factorio-dat/encode"
	"github.com/hornwitser/factorio-dat/parse"

	"github.com/scott-cotton/cli"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		if err := verifyFile(cfg, cc, file); err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			failed = true
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func verifyFile(cfg *VerifyConfig, cc *cli.Context, file string) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return err
	}
	out, err := encode.Encode(doc)
	if err != nil {
		return err
	}
	if !bytes.Equal(d, out) {
		return fmt.Errorf("round trip differs: %d bytes in, %d bytes out", len(d), len(out))
	}
	return nil
}
