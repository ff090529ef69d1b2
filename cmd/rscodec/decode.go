package main

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/rscodec"
)

var decodeCommand = cli.Command{
	Name:  "decode",
	Usage: "decode a stream produced by \"rscodec encode\"",
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
		cli.StringFlag{Name: "erasures", Value: "", Usage: "comma-separated erasure positions applied to every block"},
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

		erasures, err := parseErasures(c.String("erasures"))
		if err != nil {
			return err
		}

		codec, err := rscodec.New(opts.N, opts.K, opts.Symsize, opts.Gfpoly, opts.FCR, opts.Prim, opts.Variant)
		if err != nil {
			return errors.Wrap(err, "constructing codec")
		}

		stream, err := readAll(c.String("in"))
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if len(stream) < len(streamMagic)+9 || string(stream[:len(streamMagic)]) != streamMagic {
			return errors.New("input is not an rscodec stream")
		}
		header := stream[len(streamMagic) : len(streamMagic)+9]
		payloadLen := binary.BigEndian.Uint64(header[:8])
		compressed := header[8] == 1
		body := stream[len(streamMagic)+9:]

		n := codec.N()
		if len(body)%n != 0 {
			return errors.New("codeword stream length is not a multiple of n")
		}

		out, err := openOut(c.String("out"))
		if err != nil {
			return errors.Wrap(err, "opening output")
		}
		defer out.Close()

		var payload []byte
		for off := 0; off < len(body); off += n {
			data, corrections, err := codec.Decode(body[off:off+n], erasures)
			if err != nil {
				return errors.Wrapf(err, "decoding block at offset %d", off)
			}
			if len(corrections) > 0 {
				color.Red("block at offset %d: corrected positions %v", off, corrections)
			}
			payload = append(payload, data...)
		}
		if uint64(len(payload)) > payloadLen {
			payload = payload[:payloadLen]
		}

		if compressed {
			payload, err = snappy.Decode(nil, payload)
			if err != nil {
				return errors.Wrap(err, "decompressing payload")
			}
		}

		_, err = out.Write(payload)
		return err
	},
}

func parseErasures(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing erasure position %q", p)
		}
		out[i] = v
	}
	return out, nil
}
