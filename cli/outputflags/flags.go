package outputflags

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/bon/bonio"
	"github.com/brimdata/bon/bonio/anyio"
	"golang.org/x/term"
)

type Flags struct {
	anyio.WriterOpts
	DefaultFormat string
	outputFile    string
	forceBinary   bool
	textShortcut  bool
}

func (f *Flags) Options() anyio.WriterOpts {
	return f.WriterOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	if f.DefaultFormat == "" {
		f.DefaultFormat = "bon"
	}
	fs.StringVar(&f.Format, "f", f.DefaultFormat, "format for output data [bon,yaml,text]")
	fs.BoolVar(&f.textShortcut, "t", false, "use text output independent of -f option")
	fs.BoolVar(&f.forceBinary, "B", false, "allow BON output to be sent to a terminal")
	fs.StringVar(&f.Text.Indent, "indent", "", "prefix for each line of text output")
	fs.StringVar(&f.outputFile, "o", "", "write data to output file")
}

func (f *Flags) Init() error {
	if f.textShortcut {
		if f.Format != f.DefaultFormat {
			return errors.New("cannot use -t with -f")
		}
		f.Format = "text"
	}
	switch f.Format {
	case "bon", "yaml", "text":
	default:
		return fmt.Errorf("-f: no such output format: %q", f.Format)
	}
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	if f.outputFile == "" && f.Format == "bon" && !f.forceBinary && term.IsTerminal(int(os.Stdout.Fd())) {
		f.Format = "text"
	}
	return nil
}

func (f *Flags) FileName() string {
	return f.outputFile
}

// Open returns a writer to the output file or to standard output.
func (f *Flags) Open() (bonio.WriteCloser, error) {
	if f.outputFile == "" {
		return anyio.NewWriter(bonio.NopCloser(os.Stdout), f.WriterOpts)
	}
	file, err := os.Create(f.outputFile)
	if err != nil {
		return nil, err
	}
	w, err := anyio.NewWriter(file, f.WriterOpts)
	if err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}
