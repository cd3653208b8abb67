package vparquet

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultPageBufferSize  = 256 * 1024
	DefaultDataPageVersion = 1
	DefaultBatchSize       = 1024
)

// The ReaderConfig type carries configuration options for page and column
// readers.
//
// ReaderConfig implements the ReaderOption interface so it can be used directly
// as argument to the NewColumnPages function when needed, for example:
//
//	pages, err := vparquet.NewColumnPages(input, codec, &vparquet.ReaderConfig{
//		SkipPageChecksum: true,
//	})
type ReaderConfig struct {
	PageBufferSize   int
	SkipPageChecksum bool
	Logger           log.Logger
	Registerer       prometheus.Registerer
}

// DefaultReaderConfig returns a new ReaderConfig value initialized with the
// default reader configuration.
func DefaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{
		PageBufferSize: DefaultPageBufferSize,
		Logger:         log.NewNopLogger(),
	}
}

// NewReaderConfig constructs a new reader configuration applying the options
// passed as arguments.
//
// The function returns an non-nil error if some of the options carried invalid
// configuration values.
func NewReaderConfig(options ...ReaderOption) (*ReaderConfig, error) {
	config := DefaultReaderConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *ReaderConfig) Apply(options ...ReaderOption) {
	for _, opt := range options {
		opt.ConfigureReader(c)
	}
}

// ConfigureReader applies configuration options from c to config.
func (c *ReaderConfig) ConfigureReader(config *ReaderConfig) {
	*config = ReaderConfig{
		PageBufferSize:   coalesceInt(c.PageBufferSize, config.PageBufferSize),
		SkipPageChecksum: c.SkipPageChecksum || config.SkipPageChecksum,
		Logger:           coalesceLogger(c.Logger, config.Logger),
		Registerer:       coalesceRegisterer(c.Registerer, config.Registerer),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *ReaderConfig) Validate() error {
	const baseName = "vparquet.(*ReaderConfig)."
	return errorInvalidConfiguration(
		validatePositiveInt(baseName+"PageBufferSize", c.PageBufferSize),
		validateNotNil(baseName+"Logger", c.Logger),
	)
}

// The WriterConfig type carries configuration options for page writers.
//
// WriterConfig implements the WriterOption interface so it can be used directly
// as argument to the NewPageWriter function when needed, for example:
//
//	writer, err := vparquet.NewPageWriter(output, &vparquet.Snappy, &vparquet.WriterConfig{
//		PageChecksum: true,
//	})
type WriterConfig struct {
	DataPageVersion int
	PageChecksum    bool
	Logger          log.Logger
}

// DefaultWriterConfig returns a new WriterConfig value initialized with the
// default writer configuration.
func DefaultWriterConfig() *WriterConfig {
	return &WriterConfig{
		DataPageVersion: DefaultDataPageVersion,
		Logger:          log.NewNopLogger(),
	}
}

// NewWriterConfig constructs a new writer configuration applying the options
// passed as arguments.
func NewWriterConfig(options ...WriterOption) (*WriterConfig, error) {
	config := DefaultWriterConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *WriterConfig) Apply(options ...WriterOption) {
	for _, opt := range options {
		opt.ConfigureWriter(c)
	}
}

// ConfigureWriter applies configuration options from c to config.
func (c *WriterConfig) ConfigureWriter(config *WriterConfig) {
	*config = WriterConfig{
		DataPageVersion: coalesceInt(c.DataPageVersion, config.DataPageVersion),
		PageChecksum:    c.PageChecksum || config.PageChecksum,
		Logger:          coalesceLogger(c.Logger, config.Logger),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *WriterConfig) Validate() error {
	const baseName = "vparquet.(*WriterConfig)."
	return errorInvalidConfiguration(
		validateOneOfInt(baseName+"DataPageVersion", c.DataPageVersion, 1, 2),
		validateNotNil(baseName+"Logger", c.Logger),
	)
}

// ReaderOption is an interface implemented by types that carry configuration
// options for page and column readers.
type ReaderOption interface {
	ConfigureReader(*ReaderConfig)
}

// WriterOption is an interface implemented by types that carry configuration
// options for page writers.
type WriterOption interface {
	ConfigureWriter(*WriterConfig)
}

// PageBufferSize configures the size of the buffer used to read pages from
// their underlying stream.
//
// Defaults to 256 KiB.
type PageBufferSize int

func (size PageBufferSize) ConfigureReader(config *ReaderConfig) { config.PageBufferSize = int(size) }

// SkipPageChecksum creates a configuration option which disables the
// verification of page checksums.
//
// By default, checksums are verified on every page that carries one.
func SkipPageChecksum(skip bool) ReaderOption {
	return readerOption(func(config *ReaderConfig) { config.SkipPageChecksum = skip })
}

// PageChecksum creates a configuration option which enables writing CRC32
// checksums in page headers.
//
// By default, pages are written without checksums.
func PageChecksum(enabled bool) WriterOption {
	return writerOption(func(config *WriterConfig) { config.PageChecksum = enabled })
}

// DataPageVersion creates a configuration option which configures the version
// of data page headers written by page writers.
//
// Defaults to version 1.
func DataPageVersion(version int) WriterOption {
	return writerOption(func(config *WriterConfig) { config.DataPageVersion = version })
}

// Registerer creates a configuration option which registers the reader metrics
// with reg.
//
// By default, metrics are collected in a process-wide set that is not
// registered anywhere.
func Registerer(reg prometheus.Registerer) ReaderOption {
	return readerOption(func(config *ReaderConfig) { config.Registerer = reg })
}

// Logger creates a configuration option which sets the logger used by readers
// and writers.
//
// Defaults to a logger that discards every record.
func Logger(logger log.Logger) LoggerOption {
	return LoggerOption{logger: logger}
}

// LoggerOption is the configuration option returned by Logger, it applies to
// both readers and writers.
type LoggerOption struct{ logger log.Logger }

func (opt LoggerOption) ConfigureReader(config *ReaderConfig) { config.Logger = opt.logger }
func (opt LoggerOption) ConfigureWriter(config *WriterConfig) { config.Logger = opt.logger }

type readerOption func(*ReaderConfig)

func (opt readerOption) ConfigureReader(config *ReaderConfig) { opt(config) }

type writerOption func(*WriterConfig)

func (opt writerOption) ConfigureWriter(config *WriterConfig) { opt(config) }

func coalesceInt(i1, i2 int) int {
	if i1 != 0 {
		return i1
	}
	return i2
}

func coalesceLogger(l1, l2 log.Logger) log.Logger {
	if l1 != nil {
		return l1
	}
	return l2
}

func coalesceRegisterer(r1, r2 prometheus.Registerer) prometheus.Registerer {
	if r1 != nil {
		return r1
	}
	return r2
}

func validatePositiveInt(optionName string, optionValue int) error {
	if optionValue > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateOneOfInt(optionName string, optionValue int, supportedValues ...int) error {
	for _, value := range supportedValues {
		if value == optionValue {
			return nil
		}
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateNotNil(optionName string, optionValue interface{}) error {
	if optionValue != nil {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}
