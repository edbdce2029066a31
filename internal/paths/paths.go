package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBaseDir    = "."
	envFilename       = ".env"
	configFilename    = "helix-config.yaml"
	receiptsDir       = ".hlx/receipts"
	receiptNameLayout = "publish-150405.json"
)

// Builder resolves project file locations rooted at Base (default ".").
type Builder struct {
	Base string
}

func New(base string) *Builder {
	if base == "" {
		base = defaultBaseDir
	}
	return &Builder{Base: base}
}

func (b *Builder) EnvFile() string {
	return filepath.Join(b.Base, envFilename)
}

func (b *Builder) ConfigFile() string {
	return filepath.Join(b.Base, configFilename)
}

// ReceiptDir returns the date-based receipt directory: Base/.hlx/receipts/YYYY/MM/DD
func (b *Builder) ReceiptDir(t time.Time) string {
	y, m, d := t.UTC().Date()
	return filepath.Join(b.Base, receiptsDir, fmt.Sprintf("%04d", y), fmt.Sprintf("%02d", int(m)), fmt.Sprintf("%02d", d))
}

// Receipt returns the receipt path for a publish started at t.
func (b *Builder) Receipt(t time.Time) string {
	return filepath.Join(b.ReceiptDir(t), ReceiptName(t))
}

// ReceiptName is the file name of a receipt for a publish started at t.
func ReceiptName(t time.Time) string {
	return t.UTC().Format(receiptNameLayout)
}

// EnsureReceiptDir creates the date-based directory if it does not exist.
func (b *Builder) EnsureReceiptDir(t time.Time) error {
	return os.MkdirAll(b.ReceiptDir(t), 0o755)
}
