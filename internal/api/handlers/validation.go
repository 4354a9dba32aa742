package handlers

import (
	"fmt"

	"github.com/Conceptual-Machines/counterpoint-api/internal/counterpoint"
	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the music binding tags to gin's validator:
//
//	pitch          a sounding note name such as "C4" or "Bb3"
//	pitch_or_rest  a note name or "rest"
//	species        1 or 2
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("pitch", validatePitch); err != nil {
		return err
	}
	if err := v.RegisterValidation("pitch_or_rest", validatePitchOrRest); err != nil {
		return err
	}
	return v.RegisterValidation("species", validateSpecies)
}

func validatePitch(fl validator.FieldLevel) bool {
	p, err := music.ParsePitchEvent(fl.Field().String(), music.WholeNote)
	return err == nil && !p.IsRest()
}

func validatePitchOrRest(fl validator.FieldLevel) bool {
	return music.IsValidPitchName(fl.Field().String())
}

func validateSpecies(fl validator.FieldLevel) bool {
	_, err := counterpoint.ParseSpecies(int(fl.Field().Int()))
	return err == nil
}
