package dataset

import (
	"turnlint-hq/turnlint/pkg/config"
	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
	"turnlint-hq/turnlint/pkg/dataset/loader"
	"turnlint-hq/turnlint/pkg/dataset/validator"
)

// Validate runs the full validation pass over an already-parsed value.
func Validate(data any, cfg *config.Config) *dserrors.Result {
	return validator.New().Validate(data, cfg)
}

// ValidateFile loads a dataset file (JSON array, JSON Lines, or YAML) and
// validates it. Loader failures become structure errors on the returned
// Result rather than Go errors: the caller always receives a complete
// Result, and "is the dataset usable" is answered by Result.IsValid.
func ValidateFile(path string, cfg *config.Config) *dserrors.Result {
	data, loadErrs := loader.Load(path)
	result := validateLoaded(data, loadErrs, cfg)
	result.Source = path
	return result
}

// ValidateBytes parses raw dataset bytes and validates them. The name
// selects the format (YAML for .yaml/.yml) and labels the Result's Source.
func ValidateBytes(data []byte, name string, cfg *config.Config) *dserrors.Result {
	value, loadErrs := loader.Parse(data, name)
	result := validateLoaded(value, loadErrs, cfg)
	result.Source = name
	return result
}

// validateLoaded folds loader findings and validation findings into one
// Result. A totally unparseable input yields a Result bearing only the
// loader's structure errors; a partially parsed JSON Lines input has its
// surviving lines validated with the line errors listed first.
func validateLoaded(data any, loadErrs []*dserrors.Error, cfg *config.Config) *dserrors.Result {
	if data == nil {
		result := dserrors.NewResult()
		result.Merge(loadErrs, nil)
		return result.Finalize()
	}

	result := validator.New().Validate(data, cfg)
	if len(loadErrs) > 0 {
		result.Errors = append(loadErrs, result.Errors...)
		result.Finalize()
	}
	return result
}
