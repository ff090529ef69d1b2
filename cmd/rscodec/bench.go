package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/klauspost/reedsolomon"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/rscodec"
)

// benchCommand compares this package's BM/Chien/Forney encoder against
// klauspost/reedsolomon's Vandermonde-matrix encoder for the same (n,k).
// This is a throughput comparison only: klauspost/reedsolomon is never used
// for correctness anywhere in rscodec, only as a familiar baseline here.
var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "compare encode throughput against klauspost/reedsolomon's matrix codec",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "n", Value: 20, Usage: "codeword length"},
		cli.IntFlag{Name: "k", Value: 12, Usage: "message length"},
		cli.IntFlag{Name: "blocksize", Value: 1 << 16, Usage: "bytes per data shard"},
		cli.IntFlag{Name: "iterations", Value: 100, Usage: "number of encode calls to time"},
	},
	Action: func(c *cli.Context) error {
		n, k, blocksize, iterations := c.Int("n"), c.Int("k"), c.Int("blocksize"), c.Int("iterations")
		if k >= n || k <= 0 {
			return errors.New("require 0 < k < n")
		}

		codec, err := rscodec.New(n, k, -1, -1, -1, -1, "char")
		if err != nil {
			return errors.Wrap(err, "constructing rscodec.Codec")
		}
		matrix, err := reedsolomon.New(k, n-k)
		if err != nil {
			return errors.Wrap(err, "constructing klauspost/reedsolomon encoder")
		}

		rng := rand.New(rand.NewSource(1))
		row := make([]byte, k)
		rng.Read(row)

		shards := make([][]byte, n)
		for i := 0; i < k; i++ {
			shards[i] = make([]byte, blocksize)
			rng.Read(shards[i])
		}
		for i := k; i < n; i++ {
			shards[i] = make([]byte, blocksize)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			if _, err := codec.Encode(row); err != nil {
				return err
			}
		}
		rsElapsed := time.Since(start)

		start = time.Now()
		for i := 0; i < iterations; i++ {
			if err := matrix.Encode(shards); err != nil {
				return err
			}
		}
		matrixElapsed := time.Since(start)

		fmt.Printf("rscodec:              %d single-row encodes in %v (%.0f rows/s)\n",
			iterations, rsElapsed, float64(iterations)/rsElapsed.Seconds())
		fmt.Printf("klauspost/reedsolomon: %d shard-set encodes of %d bytes/shard in %v (%.2f MB/s)\n",
			iterations, blocksize, matrixElapsed,
			float64(iterations*k*blocksize)/matrixElapsed.Seconds()/(1<<20))
		return nil
	},
}
