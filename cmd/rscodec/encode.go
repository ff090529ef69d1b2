package main

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/rscodec"
)

// streamMagic tags rscodec's own block-stream format: 8-byte magic, a
// length-prefixed payload size, a compression flag, then one n-symbol
// codeword per k-symbol block of the (optionally snappy-compressed)
// payload, the last block zero-padded.
const streamMagic = "RSCODEC1"

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "Reed-Solomon encode a file into a stream of codewords",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "n", Usage: "codeword length"},
		cli.IntFlag{Name: "k", Usage: "message length"},
		cli.IntFlag{Name: "symsize", Value: -1, Usage: "bits per symbol, -1 for the default (8)"},
		cli.IntFlag{Name: "gfpoly", Value: -1, Usage: "field polynomial, -1 for the symsize default"},
		cli.IntFlag{Name: "fcr", Value: -1, Usage: "first consecutive root, -1 for the symsize default"},
		cli.IntFlag{Name: "prim", Value: -1, Usage: "generator stride, -1 for the symsize default"},
		cli.StringFlag{Name: "variant", Value: "char", Usage: "char, ccsds"},
		cli.StringFlag{Name: "in", Value: "-", Usage: "input file, - for stdin"},
		cli.StringFlag{Name: "out", Value: "-", Usage: "output file, - for stdout"},
		cli.BoolFlag{Name: "compress", Usage: "snappy-compress the payload before encoding"},
		cli.StringFlag{Name: "c", Value: "", Usage: "codec options from a JSON file, overrides the flags above"},
	},
	Action: func(c *cli.Context) error {
		opts := CodecOptions{
			N: c.Int("n"), K: c.Int("k"), Symsize: c.Int("symsize"),
			Gfpoly: c.Int("gfpoly"), FCR: c.Int("fcr"), Prim: c.Int("prim"),
			Variant: c.String("variant"),
		}
		if path := c.String("c"); path != "" {
			if err := parseJSONConfig(&opts, path); err != nil {
				return errors.Wrapf(err, "loading codec options from %s", path)
			}
		}
		if opts.N == 0 || opts.K == 0 {
			return errors.Wrap(rscodec.ErrConfig, "both -n and -k are required")
		}

		codec, err := rscodec.New(opts.N, opts.K, opts.Symsize, opts.Gfpoly, opts.FCR, opts.Prim, opts.Variant)
		if err != nil {
			return errors.Wrap(err, "constructing codec")
		}

		payload, err := readAll(c.String("in"))
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		compress := c.Bool("compress")
		if compress {
			payload = snappy.Encode(nil, payload)
		}

		out, err := openOut(c.String("out"))
		if err != nil {
			return errors.Wrap(err, "opening output")
		}
		defer out.Close()

		if _, err := out.Write([]byte(streamMagic)); err != nil {
			return err
		}
		var header [9]byte
		binary.BigEndian.PutUint64(header[:8], uint64(len(payload)))
		if compress {
			header[8] = 1
		}
		if _, err := out.Write(header[:]); err != nil {
			return err
		}

		k := codec.K()
		block := make([]byte, k)
		for off := 0; off < len(payload); off += k {
			n := copy(block, payload[off:])
			for i := n; i < k; i++ {
				block[i] = 0
			}
			codeword, err := codec.Encode(block)
			if err != nil {
				return errors.Wrapf(err, "encoding block at offset %d", off)
			}
			if _, err := out.Write(codeword); err != nil {
				return err
			}
		}
		if len(payload) == 0 {
			codeword, err := codec.Encode(block)
			if err != nil {
				return err
			}
			if _, err := out.Write(codeword); err != nil {
				return err
			}
		}
		return nil
	},
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func openOut(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
