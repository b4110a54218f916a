package cjlib

import (
	"errors"
	"fmt"
	"sync"
)

// Code enumerates the error taxonomy produced while parsing, serialising,
// or manipulating a Document. It mirrors cjlib_json_error_types from the
// original C implementation one-for-one.
type Code int

const (
	// NoError means no error is currently recorded in the Reporter.
	NoError Code = iota
	// Undefined marks an error that a lower-level operation failed to
	// classify; the Reporter up-converts to this code rather than losing
	// the failure entirely.
	Undefined
	// InvalidType means a token did not match any of the six JSON kinds.
	InvalidType
	// InvalidJson is a structural error not covered by a more specific code.
	InvalidJson
	// DuplicateKey means two keys with the same bytes appeared in one object.
	DuplicateKey
	// InvalidProperty means a key:value pair was malformed (missing quote,
	// premature EOF, and similar).
	InvalidProperty
	// MissingSeparator means a key was not followed by ':'.
	MissingSeparator
	// MissingComma means two tokens were not separated by ','.
	MissingComma
	// IncompleteCurlyBrackets means a '{' was never matched by a '}'.
	IncompleteCurlyBrackets
	// IncompleteSquareBrackets means a '[' was never matched by a ']'.
	IncompleteSquareBrackets
	// IncompleteDoubleQuotes means a string literal was never terminated.
	IncompleteDoubleQuotes
	// InvalidNumber means a number literal was malformed or out of range.
	InvalidNumber
	// MemoryError means an allocation failed while building the value tree.
	MemoryError
	// KeyNotFound means a lookup or removal referenced an absent key.
	KeyNotFound
	// IndexOutOfRange means an array index fell outside [0, len).
	IndexOutOfRange
)

var codeNames = map[Code]string{
	NoError:                  "NoError",
	Undefined:                "Undefined",
	InvalidType:              "InvalidType",
	InvalidJson:              "InvalidJson",
	DuplicateKey:             "DuplicateKey",
	InvalidProperty:          "InvalidProperty",
	MissingSeparator:         "MissingSeparator",
	MissingComma:             "MissingComma",
	IncompleteCurlyBrackets:  "IncompleteCurlyBrackets",
	IncompleteSquareBrackets: "IncompleteSquareBrackets",
	IncompleteDoubleQuotes:   "IncompleteDoubleQuotes",
	InvalidNumber:            "InvalidNumber",
	MemoryError:              "MemoryError",
	KeyNotFound:              "KeyNotFound",
	IndexOutOfRange:          "IndexOutOfRange",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}

var (
	// ErrParse is the sentinel wrapped by every parser-originated failure,
	// so callers can errors.Is(err, ErrParse) without caring about the
	// precise Code.
	ErrParse = errors.New("cjlib: parse error")
	// ErrType is the sentinel wrapped by every Value type-assertion failure.
	ErrType = errors.New("cjlib: type error")
	// ErrDict is the sentinel wrapped by every OrderedMap failure.
	ErrDict = errors.New("cjlib: dictionary error")
	// ErrSerialize is the sentinel wrapped by every serialiser failure.
	ErrSerialize = errors.New("cjlib: serialise error")
)

// CodedError pairs a Code with the property name/value that were active
// when the failure occurred, and wraps one of the package sentinels so
// callers can match on either granularity.
type CodedError struct {
	Code     Code
	Property string
	Value    string
	sentinel error
}

func (e *CodedError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %s", e.sentinel, e.Code)
	}
	return fmt.Sprintf("%s: %s (property %q, value %q)", e.sentinel, e.Code, e.Property, e.Value)
}

func (e *CodedError) Unwrap() error {
	return e.sentinel
}

func newParseErr(code Code, property, value string) *CodedError {
	return &CodedError{Code: code, Property: property, Value: value, sentinel: ErrParse}
}

func newDictErr(code Code, property string) *CodedError {
	return &CodedError{Code: code, Property: property, sentinel: ErrDict}
}

func newTypeErr(property string) *CodedError {
	return &CodedError{Code: InvalidType, Property: property, sentinel: ErrType}
}

func newSerializeErr(code Code, property, value string) *CodedError {
	return &CodedError{Code: code, Property: property, Value: value, sentinel: ErrSerialize}
}

// Reporter is the process-wide structured failure slot, modelled after
// cjlib_json_error_init/_destroy/_setup_error and cjlib_json_get_error.
// It exists alongside Go's normal error returns as an optional
// convenience mirror of the last failure observed by any Document; the
// mutex makes it safe to read/write from any goroutine.
type Reporter struct {
	mu            sync.Mutex
	propertyName  string
	propertyValue string
	code          Code
}

var globalReporter = &Reporter{code: NoError}

// Init resets the reporter to its zero (NoError) state.
func (r *Reporter) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.propertyName = ""
	r.propertyValue = ""
	r.code = NoError
}

// Destroy clears the reporter's state. Distinct from Init only in name,
// to mirror the original's separate init/destroy lifecycle calls.
func (r *Reporter) Destroy() {
	r.Init()
}

// Setup records a new failure into the reporter.
func (r *Reporter) Setup(propertyName, propertyValue string, code Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.propertyName = propertyName
	r.propertyValue = propertyValue
	r.code = code
}

// ErrorInfo is the value-type snapshot returned by Reporter.Get.
type ErrorInfo struct {
	PropertyName  string
	PropertyValue string
	Code          Code
}

// Get copies the reporter's current state into an ErrorInfo.
func (r *Reporter) Get() ErrorInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ErrorInfo{
		PropertyName:  r.propertyName,
		PropertyValue: r.propertyValue,
		Code:          r.code,
	}
}

// report records err into the global Reporter and returns err unchanged,
// so call sites can do `return report(err)`. A nil err resets the
// Reporter to NoError; an err without a Code is recorded as Undefined.
func report(err error) error {
	if err == nil {
		globalReporter.Init()
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		globalReporter.Setup(ce.Property, ce.Value, ce.Code)
		return err
	}
	globalReporter.Setup("", "", Undefined)
	return err
}

// LastError returns the last error recorded by any Document operation in
// this process.
func LastError() ErrorInfo {
	return globalReporter.Get()
}
