package article

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingClipboard struct {
	written []string
	err     error
}

func (c *recordingClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

func TestCopy(t *testing.T) {
	cb := &recordingClipboard{}
	block := CodeBlock{Language: "bash", Text: "echo hi"}

	ack := Copy(cb, block)
	assert.True(t, ack.OK)
	assert.Equal(t, CopiedMessage, ack.Message)
	assert.NoError(t, ack.Err)
	assert.Equal(t, []string{"echo hi"}, cb.written)
}

func TestCopyFailure(t *testing.T) {
	doc := Document{Body: "```bash\necho hi\n```\n", Found: true}
	p := Parse(doc)

	ack := Copy(&recordingClipboard{err: errors.New("no display")}, p.CodeBlocks[0])
	assert.False(t, ack.OK)
	assert.Equal(t, CopyFailedMessage, ack.Message)
	assert.ErrorIs(t, ack.Err, ErrClipboardWriteFailed)
	assert.Equal(t, doc, p.Document)

	ack = Copy(nil, p.CodeBlocks[0])
	assert.False(t, ack.OK)
	assert.ErrorIs(t, ack.Err, ErrClipboardWriteFailed)
}

func TestSystemClipboard(t *testing.T) {
	orig := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = orig })

	var got string
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}

	ack := Copy(SystemClipboard{}, CodeBlock{Text: "make build"})
	assert.True(t, ack.OK)
	assert.Equal(t, "make build", got)
}
