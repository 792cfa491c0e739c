package pwdgen

import (
	"fmt"
	"io"
	"strconv"

	"github.com/francoispqt/gojay"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasttemplate"
)

const (
	TemplateStart = "{{"
	TemplateEnd   = "}}"
)

var (
	ErrUnknownTag = fmt.Errorf("unknown template tag")

	// TemplateTags lists the tags accepted in an output template
	TemplateTags = []string{"value", "index", "id", "length", "size", "bits"}
)

// Emitter writes generated records to the output, one per line
type Emitter struct {
	w      io.Writer
	format Format
	tmpl   *fasttemplate.Template
}

// NewEmitter validates the template, if any. Templates apply to the text and pretty formats
func NewEmitter(w io.Writer, format Format, template string) (*Emitter, error) {
	e := &Emitter{w: w, format: format}
	if template == "" {
		return e, nil
	}

	t, err := fasttemplate.NewTemplate(template, TemplateStart, TemplateEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	// render a dummy record so a bad tag fails before any entropy is spent
	if _, err := t.ExecuteFunc(io.Discard, recordTagFunc(&Record{})); err != nil {
		return nil, err
	}
	e.tmpl = t
	return e, nil
}

func recordTagFunc(r *Record) fasttemplate.TagFunc {
	return func(w io.Writer, tag string) (int, error) {
		switch tag {
		case "value":
			return io.WriteString(w, r.Value)
		case "index":
			return io.WriteString(w, strconv.Itoa(r.Index))
		case "id":
			return io.WriteString(w, r.ID)
		case "length":
			return io.WriteString(w, strconv.Itoa(len(r.Value)))
		case "size":
			return io.WriteString(w, strconv.Itoa(r.AlphabetSize))
		case "bits":
			return io.WriteString(w, strconv.FormatFloat(RoundBits(r.EntropyBits), 'f', -1, 64))
		}
		return 0, fmt.Errorf("%w: %q. supported %v", ErrUnknownTag, tag, TemplateTags)
	}
}

func (e *Emitter) Emit(r *Record) error {
	msg := bytebufferpool.Get()
	defer bytebufferpool.Put(msg)

	switch {
	case e.format == JSON:
		data, err := gojay.MarshalJSONObject(r)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		msg.B = append(msg.B, data...)
	case e.tmpl != nil:
		if _, err := e.tmpl.ExecuteFunc(msg, recordTagFunc(r)); err != nil {
			return err
		}
	default:
		msg.B = append(msg.B, r.Value...)
	}
	msg.B = append(msg.B, '\n')

	_, err := e.w.Write(msg.B)
	return err
}
