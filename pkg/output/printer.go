// Package output prints a search run to the console: a banner describing
// the request, one line per matching file, errors on the error stream and
// a closing summary.
package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/format"
	"github.com/arthur-debert/strfind/pkg/output/styles"
	"github.com/arthur-debert/strfind/pkg/search"
	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/pterm/pterm"
)

var _ search.Reporter = (*Printer)(nil)

// Options controls how the Printer decorates its output
type Options struct {
	// Color enables lipgloss styles and pterm prefixes
	Color bool
	// Quiet suppresses everything except match lines and errors
	Quiet bool
}

// Printer is the console Reporter
type Printer struct {
	out  io.Writer
	err  io.Writer
	opts Options
	req  types.SearchRequest
}

// NewPrinter creates a Printer writing results to out and errors to errOut
func NewPrinter(out, errOut io.Writer, opts Options) *Printer {
	return &Printer{out: out, err: errOut, opts: opts}
}

// Start prints the banner
func (p *Printer) Start(req types.SearchRequest) {
	p.req = req
	if p.opts.Quiet {
		return
	}

	if req.RootDefaulted {
		p.println(p.out, p.style("Status", fmt.Sprintf(MsgDefaultDirectory, req.Root)))
	}

	p.field(MsgBannerDirectory, req.Root)
	p.field(MsgBannerFilename, req.NamePattern)
	p.field(MsgBannerTerm, req.Term)
	p.field(MsgBannerIgnoreCase, yesNo(req.IgnoreCase))
	p.field(MsgBannerRegex, yesNo(req.UseRegex))
	if len(req.Exclude) > 0 {
		p.field(MsgBannerExclude, strings.Join(req.Exclude, ", "))
	}
	p.println(p.out, p.style("Separator", MsgSeparator))
}

// Match prints one line for a matching file
func (p *Printer) Match(result types.MatchResult) {
	line := format.Candidate(result.Candidate, p.req.Output)
	if p.req.Output == types.OutputName {
		p.println(p.out, p.style("MatchName", line))
		return
	}
	p.println(p.out, p.style("Match", line))
}

// Error prints err to the error stream
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	p.println(p.err, p.prefixed(pterm.Error, "Error", MsgErrorPrefix, Describe(err)))
}

// Warn prints a warning to the error stream
func (p *Printer) Warn(msg string) {
	p.println(p.err, p.prefixed(pterm.Warning, "Warning", MsgWarningPrefix, msg))
}

// Finish prints the summary
func (p *Printer) Finish(summary types.RunSummary) {
	if p.opts.Quiet {
		return
	}

	p.println(p.out, p.style("Separator", MsgSeparator))

	if summary.NameMatched == 0 {
		if p.req.NamePattern == types.DefaultNamePattern {
			p.println(p.out, p.style("Muted", fmt.Sprintf(MsgNoFiles, p.req.Root)))
		} else {
			p.println(p.out, p.style("Muted", fmt.Sprintf(MsgNoNamedFiles, p.req.NamePattern, p.req.Root)))
		}
	} else {
		p.println(p.out, p.style("Muted", fmt.Sprintf(MsgChecked, summary.NameMatched, p.req.NamePattern)))

		complete, none := MsgCompleteLiteral, MsgNoneLiteral
		if p.req.UseRegex {
			complete, none = MsgCompleteRegex, MsgNoneRegex
		}
		p.println(p.out, p.style("Summary", fmt.Sprintf(complete, summary.ContentMatched, p.req.Term)))
		if summary.ContentMatched == 0 {
			p.println(p.out, p.style("Muted", fmt.Sprintf(none, p.req.Term)))
		}
	}

	if summary.Errors > 0 {
		p.println(p.out, p.style("Warning", fmt.Sprintf(MsgErrorCount, summary.Errors)))
	}
}

// Describe renders err for a person: the message and its cause, without
// the error code.
func Describe(err error) string {
	var searchErr *errors.SearchError
	if !stderrors.As(err, &searchErr) {
		return err.Error()
	}
	if searchErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", searchErr.Message, searchErr.Wrapped)
	}
	return searchErr.Message
}

func (p *Printer) field(label, value string) {
	p.println(p.out, fmt.Sprintf("%s %s",
		p.style("Label", label+":"),
		p.style("Value", value)))
}

func (p *Printer) style(name, s string) string {
	if !p.opts.Color {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (p *Printer) prefixed(printer pterm.PrefixPrinter, styleName, plainPrefix, msg string) string {
	if !p.opts.Color {
		return plainPrefix + " " + msg
	}
	return fmt.Sprintf("%s %s", printer.Prefix.Style.Sprint(" "+printer.Prefix.Text+" "), p.style(styleName, msg))
}

func (p *Printer) println(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

func yesNo(b bool) string {
	if b {
		return MsgYes
	}
	return MsgNo
}
