// Package colfram provides a minimal columnar DataFrame library: named,
// indexable Series vectors with elementwise arithmetic, and DataFrames that
// keep such vectors row-aligned under ordered column names.
// This package is the sole public API for the library.
package colfram

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colfram/colfram/internal/config"
	"github.com/colfram/colfram/internal/dataframe"
	"github.com/colfram/colfram/internal/series"
)

// ISeries provides a type-erased interface for Series of any element kind.
// Arithmetic methods are part of the contract: a DataFrame only stores and
// retrieves columns, the Series own all arithmetic semantics.
type ISeries = series.ISeries

// Series is the concrete typed column. Element kinds: string, bool, int32,
// int64, float32, float64.
type Series[T any] = series.Series[T]

// Record is one row of input during FromRecords construction.
type Record = dataframe.Record

// Config carries the library's display and validation settings.
type Config = config.Config

// DataFrame is the public type for a DataFrame. It wraps the internal
// dataframe.DataFrame to hide implementation details.
type DataFrame struct {
	df *dataframe.DataFrame
}

// NewSeries creates a new typed Series owning a copy of values.
func NewSeries[T any](name string, values []T) *Series[T] {
	return series.New(name, values)
}

// NewDataFrame creates a new DataFrame from the given columns, keyed by each
// series' name in argument order.
func NewDataFrame(seriesList ...ISeries) (*DataFrame, error) {
	df, err := dataframe.New(seriesList...)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// FromRecords pivots row-oriented records into a column-oriented DataFrame.
// See dataframe.FromRecords for the inference and null rules.
func FromRecords(records []Record) (*DataFrame, error) {
	df, err := dataframe.FromRecords(records)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// DataFrame methods

// Columns returns the column names in order.
func (d *DataFrame) Columns() []string {
	return d.df.Columns()
}

// Len returns the number of rows.
func (d *DataFrame) Len() int {
	return d.df.Len()
}

// Width returns the number of columns.
func (d *DataFrame) Width() int {
	return d.df.Width()
}

// HasColumn returns true if the DataFrame has the given column.
func (d *DataFrame) HasColumn(name string) bool {
	return d.df.HasColumn(name)
}

// Column returns the column stored under name.
func (d *DataFrame) Column(name string) (ISeries, error) {
	return d.df.Column(name)
}

// SetColumn inserts or replaces the column under name. Replacing keeps the
// column's position; a new name is appended at the end of the column order.
func (d *DataFrame) SetColumn(name string, s ISeries) {
	d.df.SetColumn(name, s)
}

// Select returns a new DataFrame with only the specified columns.
func (d *DataFrame) Select(names ...string) (*DataFrame, error) {
	df, err := d.df.Select(names...)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// Drop returns a new DataFrame without the specified columns.
func (d *DataFrame) Drop(names ...string) *DataFrame {
	return &DataFrame{df: d.df.Drop(names...)}
}

// Validate checks that every column has the same length.
func (d *DataFrame) Validate() error {
	return d.df.Validate()
}

// String returns the tabular rendering of the DataFrame.
func (d *DataFrame) String() string {
	return d.df.String()
}

// Record materializes the DataFrame as an Arrow record batch. The caller
// owns the returned record and must Release it.
func (d *DataFrame) Record(mem memory.Allocator) (arrow.Record, error) {
	return d.df.Record(mem)
}

// Fingerprint returns a 64-bit content hash of the DataFrame.
func (d *DataFrame) Fingerprint() uint64 {
	return d.df.Fingerprint()
}

// Equal reports whether two DataFrames have the same columns, order and
// contents.
func (d *DataFrame) Equal(other *DataFrame) bool {
	if other == nil {
		return false
	}
	return d.df.Equal(other.df)
}

// Configuration passthrough

// GetConfig returns the current global configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// SetConfig sets the global configuration.
func SetConfig(cfg Config) {
	config.SetGlobalConfig(cfg)
}

// LoadConfigFromFile loads configuration from a JSON or YAML file.
func LoadConfigFromFile(filename string) (Config, error) {
	return config.LoadFromFile(filename)
}
