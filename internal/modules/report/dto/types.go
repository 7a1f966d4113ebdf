package dto

import (
	advicedto "haverfit/internal/modules/advice/dto"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
)

type SaveInput struct {
	Path      string
	Profile   nutritiondto.ProfileInput
	Target    nutritiondto.TargetOutput
	Totals    nutritiondto.Nutrients
	Deviation nutritiondto.DeviationOutput
	Advice    []advicedto.AdviceOutput
}

type SaveOutput struct {
	ID   string
	Path string
}
