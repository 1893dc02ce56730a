package counter

import (
	"context"
	"iter"
	"strings"

	"github.com/on-the-ground/fnkit/lazy"
)

const (
	ipPrefix    = "IP:"
	ipSeparator = ": "
)

// ExtractIP returns the address of a line shaped like "IP: 192.168.1.1":
// the field between the first ": " and the next one, untrimmed.
// Lines that do not start with "IP:" or lack the ": " separator do not qualify.
func ExtractIP(line string) (string, bool) {
	if !strings.HasPrefix(line, ipPrefix) {
		return "", false
	}
	_, rest, found := strings.Cut(line, ipSeparator)
	if !found {
		return "", false
	}
	ip, _, _ := strings.Cut(rest, ipSeparator)
	return ip, true
}

// IPs yields the addresses of the qualifying lines.
func IPs(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if ip, ok := ExtractIP(line); ok {
				if !yield(ip) {
					return
				}
			}
		}
	}
}

// AnalyzeLogs counts the addresses of the qualifying log lines.
func AnalyzeLogs(lines iter.Seq[string]) *Table[string] {
	return Count(IPs(lines))
}

// AnalyzeLogIterator counts the addresses of the qualifying lines of it and
// closes it.
func AnalyzeLogIterator(ctx context.Context, it lazy.Iterator[string]) (*Table[string], error) {
	ips := lazy.Map(
		lazy.Filter(it, func(line string) bool {
			_, ok := ExtractIP(line)
			return ok
		}),
		func(line string) string {
			ip, _ := ExtractIP(line)
			return ip
		},
	)
	return CountIterator(ctx, ips)
}
