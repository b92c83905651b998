package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	nbt "github.com/tagforge/nbt-go"
	"github.com/tagforge/nbt-go/snbt"
)

type cli struct {
	From     string `help:"Input format." enum:"snbt,nbt,json" default:"snbt"`
	To       string `help:"Output format." enum:"snbt,nbt,json" default:"snbt"`
	Compress bool   `help:"Gzip binary output."`
	Path     string `arg:"" help:"Input file, or - for stdin."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("nbtcat"),
		kong.Description("Convert tag trees between stringified, binary and JSON notation."),
		kong.UsageOnError(),
	)

	data, err := readInput(args.Path)
	if err != nil {
		log.Fatal(err)
	}

	tag, err := decode(args.From, data)
	if err != nil {
		log.Fatal(err)
	}

	out, err := encode(args.To, tag, args.Compress)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decode(format string, data []byte) (*nbt.Tag, error) {
	switch format {
	case "snbt":
		tag, err := snbt.Parse(string(data))
		if err != nil {
			var syntaxErr *snbt.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, fmt.Errorf("%w\n%s", err, syntaxErr.HighlightLocation())
			}
			return nil, err
		}
		return tag, nil
	case "nbt":
		return nbt.DecodeDocument(data)
	case "json":
		return nbt.FromJSON(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func encode(format string, tag *nbt.Tag, compress bool) ([]byte, error) {
	switch format {
	case "snbt":
		return append([]byte(snbt.Marshal(tag)), '\n'), nil
	case "nbt":
		framing := nbt.CompressionNone
		if compress {
			framing = nbt.CompressionGzip
		}
		return nbt.EncodeDocument(tag, framing)
	case "json":
		out, err := nbt.ToJSON(tag)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
