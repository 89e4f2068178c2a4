package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lockstep/internal/types"
)

// ParseEntries parses lock-file text into typed entry records, the
// structurally typed cut of the mapping ParseLock returns. Fields
// beyond the known ones are ignored so lock files may carry extra
// metadata.
func ParseEntries(data []byte) ([]types.LockEntry, error) {
	root, err := ParseLock(data)
	if err != nil {
		return nil, err
	}
	return entriesFromMapping(root)
}

func entriesFromMapping(root *Mapping) ([]types.LockEntry, error) {
	entries := make([]types.LockEntry, 0, root.Len())
	for _, key := range root.Keys() {
		value, _ := root.Get(key)
		block, ok := value.(*Mapping)
		if !ok {
			return nil, entryFailure(fmt.Sprintf("entry %q must be a nested block", key))
		}
		entry := types.LockEntry{Key: key}
		for _, field := range block.Keys() {
			fieldValue, _ := block.Get(field)
			switch field {
			case "version":
				text, err := scalarField(key, field, fieldValue)
				if err != nil {
					return nil, err
				}
				entry.Version = text
			case "resolved":
				text, err := scalarField(key, field, fieldValue)
				if err != nil {
					return nil, err
				}
				entry.Resolved = text
			case "integrity":
				text, err := scalarField(key, field, fieldValue)
				if err != nil {
					return nil, err
				}
				entry.Integrity = text
			case "dependencies":
				deps, err := dependencyField(key, fieldValue)
				if err != nil {
					return nil, err
				}
				entry.Dependencies = deps
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func scalarField(entryKey string, field string, value any) (string, error) {
	if _, nested := value.(*Mapping); nested {
		return "", entryFailure(fmt.Sprintf("field %s of entry %q must be a scalar", field, entryKey))
	}
	return scalarString(value), nil
}

func dependencyField(entryKey string, value any) ([]types.DependencySpec, error) {
	block, ok := value.(*Mapping)
	if !ok {
		return nil, entryFailure(fmt.Sprintf("dependencies of entry %q must be a nested block", entryKey))
	}
	deps := make([]types.DependencySpec, 0, block.Len())
	for _, name := range block.Keys() {
		rangeValue, _ := block.Get(name)
		if _, nested := rangeValue.(*Mapping); nested {
			return nil, entryFailure(fmt.Sprintf("dependency %q of entry %q must be a scalar range", name, entryKey))
		}
		deps = append(deps, types.DependencySpec{
			Name:  trimRequestToken(name),
			Range: scalarString(rangeValue),
		})
	}
	return deps, nil
}

func entryFailure(msg string) error {
	return types.Failure{
		Code: types.FailureEntryShape,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg),
	}
}
