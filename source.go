package jsonbound

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver converts raw JSON text into an untyped value tree. It is the
// external parsing collaborator behind DecodeString and friends; the
// default implementation is backed by goccy/go-json and may be swapped
// with SetDriver.
type Driver interface {
	DecodeBytes(data []byte) (any, error)
	DecodeReader(r io.Reader) (any, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = gojsonDriver{}
)

// SetDriver replaces the global JSON driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = gojsonDriver{}
	driverMu.Unlock()
}

func activeDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// gojsonDriver parses with goccy/go-json. Numbers are kept as
// json.Number so integers survive the round trip without float
// truncation.
type gojsonDriver struct{}

func (gojsonDriver) DecodeBytes(data []byte) (any, error) {
	return (gojsonDriver{}).DecodeReader(bytes.NewReader(data))
}

func (gojsonDriver) DecodeReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (gojsonDriver) Name() string { return "go-json" }
