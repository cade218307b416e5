// Copyright © 2026 The Gomon Project.

package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/zosmac/gocore"
	"github.com/zosmac/logsift/logs"
	"gopkg.in/yaml.v3"
)

type (
	// section lists the messages of a severity.
	section struct {
		Severity string   `json:"severity" yaml:"severity"`
		Messages []string `json:"messages" yaml:"messages"`
	}
)

var (
	// colors maps severities to their header colors.
	colors = map[string]*color.Color{
		"CRITICAL": color.New(color.FgMagenta, color.Bold),
		"ERROR":    color.New(color.FgRed, color.Bold),
		"WARNING":  color.New(color.FgYellow, color.Bold),
		"INFO":     color.New(color.FgGreen, color.Bold),
	}
)

// Write renders the grouped messages to w.
func Write(w io.Writer, g logs.Grouped, opts Options) error {
	switch opts.Format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if opts.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(sections(g)); err != nil {
			return gocore.Error("json Encode", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sections(g)); err != nil {
			return gocore.Error("yaml Encode", err)
		}
		if err := enc.Close(); err != nil {
			return gocore.Error("yaml Close", err)
		}
	default:
		if err := text(w, g, opts.Color); err != nil {
			return gocore.Error("write", err)
		}
	}
	return nil
}

// sections orders the grouped messages by severity.
func sections(g logs.Grouped) []section {
	ss := []section{}
	for _, s := range g.Severities() {
		ss = append(ss, section{
			Severity: s,
			Messages: g.Messages(s),
		})
	}
	return ss
}

// text writes each severity's header followed by its messages, one per line.
func text(w io.Writer, g logs.Grouped, colorize bool) error {
	bw := bufio.NewWriter(w)
	for _, s := range g.Severities() {
		bw.WriteString("\n" + header(s, colorize) + "\n")
		for _, m := range g.Messages(s) {
			bw.WriteString(m + "\n")
		}
	}
	return bw.Flush()
}

// header formats the section header for a severity.
func header(severity string, colorize bool) string {
	h := "--- " + severity + " ---"
	if !colorize {
		return h
	}
	c, ok := colors[severity]
	if !ok {
		c = color.New(color.Bold)
	}
	c.EnableColor()
	return c.Sprint(h)
}
