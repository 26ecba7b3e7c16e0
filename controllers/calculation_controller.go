package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/services"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

var activityLabels = map[string]string{
	"sedentary":   "Sedentário (pouco ou nenhum exercício)",
	"light":       "Leve (exercício leve 1-3 dias/semana)",
	"moderate":    "Moderado (exercício moderado 3-5 dias/semana)",
	"active":      "Ativo (exercício intenso 6-7 dias/semana)",
	"very_active": "Muito Ativo (exercício muito intenso ou trabalho físico)",
}

type CalculationInput struct {
	CalcType      string   `json:"calc_type" binding:"required"`
	Weight        float64  `json:"weight" binding:"required"`
	Height        *float64 `json:"height"`
	Age           *float64 `json:"age"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
}

// POST /calculations
//
// Required fields depend on calc_type: imc needs height; tmb and tdee need
// height, age and gender; tdee additionally needs activity_level; fat needs
// age and gender (height defaults to 170cm).
func CreateCalculation(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CalculationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var message string
	var err error
	switch input.CalcType {
	case "imc":
		message, err = calculateIMC(uid, input)
	case "tmb", "tdee":
		message, err = calculateTMB(uid, input)
	case "fat":
		message, err = calculateFat(uid, input)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de cálculo inválido"})
		return
	}

	if err != nil {
		if persistErr, ok := err.(persistError); ok {
			log.WithFields(log.Fields{"user_id": uid, "op": "insert_calculation"}).
				WithError(persistErr.err).Error("persist failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": persistErr.err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// persistError separates storage failures (500) from input errors (400).
type persistError struct{ err error }

func (e persistError) Error() string { return e.err.Error() }

func calculateIMC(uid uint, input CalculationInput) (string, error) {
	if input.Height == nil {
		return "", fmt.Errorf("Altura é obrigatória para IMC")
	}
	imc, err := utils.CalculateIMC(input.Weight, *input.Height)
	if err != nil {
		return "", err
	}
	category := utils.IMCCategory(imc)

	details := fmt.Sprintf("Peso: %gkg, Altura: %gcm, Categoria: %s", input.Weight, *input.Height, category)
	if err := services.SaveCalculation(uid, models.CalcIMC, imc, details); err != nil {
		return "", persistError{err}
	}
	return fmt.Sprintf("✅ Seu IMC é *%.1f* (%s).\nInterpretação: %s",
		imc, category, utils.IMCInterpretation(imc)), nil
}

func calculateTMB(uid uint, input CalculationInput) (string, error) {
	if input.Height == nil || input.Age == nil || input.Gender == "" {
		return "", fmt.Errorf("Altura, idade e sexo são obrigatórios para TMB/TDEE")
	}
	tmb := utils.CalculateTMB(input.Weight, *input.Height, *input.Age, input.Gender)

	if input.CalcType == "tmb" {
		details := fmt.Sprintf("Peso: %gkg, Altura: %gcm, Idade: %g anos, Sexo: %s",
			input.Weight, *input.Height, *input.Age, input.Gender)
		if err := services.SaveCalculation(uid, models.CalcTMB, tmb, details); err != nil {
			return "", persistError{err}
		}
		return fmt.Sprintf("🔥 Sua TMB é *%.0f kcal/dia*.\nIsso representa as calorias que seu corpo queima em repouso.", tmb), nil
	}

	if input.ActivityLevel == "" {
		return "", fmt.Errorf("Nível de atividade é obrigatório para TDEE")
	}
	tdee, err := utils.CalculateTDEE(tmb, input.ActivityLevel)
	if err != nil {
		return "", err
	}
	label := activityLabels[input.ActivityLevel]
	details := fmt.Sprintf("Peso: %gkg, Altura: %gcm, Idade: %g anos, Sexo: %s, Nível de Atividade: %s",
		input.Weight, *input.Height, *input.Age, input.Gender, label)
	if err := services.SaveCalculation(uid, models.CalcTDEE, tdee, details); err != nil {
		return "", persistError{err}
	}
	return fmt.Sprintf("⚡ Seu TDEE é *%.0f kcal/dia*.\nIsso estima as calorias que você queima com base no seu nível de atividade (%s).", tdee, label), nil
}

func calculateFat(uid uint, input CalculationInput) (string, error) {
	if input.Age == nil || input.Gender == "" {
		return "", fmt.Errorf("Idade e sexo são obrigatórios para percentual de gordura")
	}
	height := 170.0
	if input.Height != nil {
		height = *input.Height
	}
	imc, err := utils.CalculateIMC(input.Weight, height)
	if err != nil {
		return "", err
	}
	fat := utils.CalculateFatPercentage(imc, *input.Age, input.Gender)

	details := fmt.Sprintf("Peso: %gkg, Idade: %g anos, Sexo: %s", input.Weight, *input.Age, input.Gender)
	if err := services.SaveCalculation(uid, models.CalcFat, fat, details); err != nil {
		return "", persistError{err}
	}
	return fmt.Sprintf("📊 Seu percentual de gordura corporal estimado é *%.1f%%*.\nNota: Esta é uma estimativa baseada na fórmula de Deurenberg.", fat), nil
}
