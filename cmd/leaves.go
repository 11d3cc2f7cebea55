package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLeafSize = 16 << 20

// readLeavesFile reads one leaf per line. A trailing carriage return is
// dropped; blank lines are kept as empty leaves.
func readLeavesFile(path string, stdin io.Reader) ([][]byte, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open leaves file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return readLeaves(r)
}

func readLeaves(r io.Reader) ([][]byte, error) {
	var leaves [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLeafSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		leaves = append(leaves, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read leaves: %w", err)
	}
	return leaves, nil
}
