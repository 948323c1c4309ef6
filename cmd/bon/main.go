package main

import (
	"fmt"
	"os"

	"github.com/brimdata/bon/cmd/bon/check"
	"github.com/brimdata/bon/cmd/bon/decode"
	"github.com/brimdata/bon/cmd/bon/encode"
	"github.com/brimdata/bon/cmd/bon/replcmd"
	"github.com/brimdata/bon/cmd/bon/root"
	"github.com/brimdata/bon/pkg/charm"
)

func main() {
	bon := root.Bon
	bon.Add(encode.Cmd)
	bon.Add(decode.Cmd)
	bon.Add(check.Cmd)
	bon.Add(replcmd.Cmd)
	bon.Add(charm.Help)
	if err := bon.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
