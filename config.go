package dictionary

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/hashfunc"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// Config - Is a struct to be passed in the call to NewDictionary and selects and configures the engine.
//   - Engine is one of engine.AVLTree, engine.ChainedHash or engine.SortedArray, 0 (zero) gives engine.SortedArray
//   - InitialCapacity is the initial number of buckets (chained hash) or buffer length (sorted array), 0 (zero) gives the engine default
//   - HashAlgorithm is an optional custom bucket selection algorithm, only valid together with engine.ChainedHash
//   - Logger is an optional logger, nil disables logging
type Config[K cmp.Ordered] struct {
	Engine          int                       `mapstructure:"engine"`
	InitialCapacity int64                     `mapstructure:"initial_capacity"`
	HashAlgorithm   hashfunc.HashAlgorithm[K] `mapstructure:"-"`
	Logger          hclog.Logger              `mapstructure:"-"`
}

// engine - Returns the configured engine with the zero value resolved to the default
func (C Config[K]) engine() int {
	if C.Engine == 0 {
		return engine.SortedArray
	}
	return C.Engine
}

// Validate - Checks the configuration and returns all problems found as one error
func (C Config[K]) Validate() error {
	var resultErr error

	e := C.engine()
	if !engine.IsValid(e) {
		resultErr = multierror.Append(resultErr, engine.UnknownEngine{})
	}
	if C.InitialCapacity < 0 {
		resultErr = multierror.Append(resultErr, fmt.Errorf("initial capacity must be a positive value or 0 (zero) for default, got %d", C.InitialCapacity))
	}
	if C.InitialCapacity > 0 && e == engine.AVLTree {
		resultErr = multierror.Append(resultErr, fmt.Errorf("initial capacity is not supported by the %s engine", engine.Name(e)))
	}
	if C.HashAlgorithm != nil && e != engine.ChainedHash {
		resultErr = multierror.Append(resultErr, fmt.Errorf("a hash algorithm can only be used with the %s engine", engine.Name(engine.ChainedHash)))
	}

	return resultErr
}

// DecodeConfig - Returns a Config decoded from a generic map, as produced by JSON, HCL or flag parsing.
// The engine may be given either as its number or by name (e.g. "avltree", "HashDictionary", "sortedarray"),
// numbers given as strings are accepted and unknown keys are rejected. HashAlgorithm and Logger are never decoded
// and have to be set on the returned Config.
//   - raw is the map to decode
//
// It returns:
//   - conf is the decoded, not yet validated, configuration
//   - err is a standard error, if something went wrong
func DecodeConfig[K cmp.Ordered](raw map[string]interface{}) (conf Config[K], err error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       engineNameHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &conf,
	})
	if err != nil {
		return
	}

	if err = decoder.Decode(raw); err != nil {
		err = fmt.Errorf("error decoding dictionary configuration: %w", err)
	}

	return
}

// engineNameHook - Translates engine names into engine constants when decoding into an int field
func engineNameHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}

	s := data.(string)
	if _, err := strconv.Atoi(s); err == nil {
		return data, nil
	}

	return engine.Parse(s)
}
