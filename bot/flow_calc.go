package bot

import (
	"context"
	"strconv"

	"github.com/marcelosanto/telegram-food-boot/utils"
)

var calculatorChoices = []Choice{
	{Label: "📐 IMC", Data: tokCalc + ":imc"},
	{Label: "🔥 TMB", Data: tokCalc + ":tmb"},
	{Label: "⚡ TDEE", Data: tokCalc + ":tdee"},
	{Label: "📊 Gordura corporal", Data: tokCalc + ":fat"},
}

var genderChoices = []Choice{
	{Label: "Masculino", Data: tokGender + ":" + utils.GenderMale},
	{Label: "Feminino", Data: tokGender + ":" + utils.GenderFemale},
}

var activityChoices = []Choice{
	{Label: "Sedentário", Data: tokActivity + ":sedentary"},
	{Label: "Leve", Data: tokActivity + ":light"},
	{Label: "Moderado", Data: tokActivity + ":moderate"},
	{Label: "Ativo", Data: tokActivity + ":active"},
	{Label: "Muito Ativo", Data: tokActivity + ":very_active"},
}

func (e *Engine) beginCalcMenu(chatID int64) []Reply {
	e.begin(chatID, FlowCalcMenu, StateSelectCalculator)
	return replyChoices(chatID, msgSelectCalculator, withCancel(calculatorChoices))
}

func (e *Engine) stepCalculator(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateSelectCalculator:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokCalc {
			return replyChoices(sess.ChatID, msgSelectCalculator, withCancel(calculatorChoices))
		}
		switch value {
		case "imc":
			sess.Flow = FlowIMC
		case "tmb":
			sess.Flow = FlowTMB
		case "tdee":
			sess.Flow = FlowTDEE
		case "fat":
			sess.Flow = FlowFat
		default:
			return replyChoices(sess.ChatID, msgSelectCalculator, withCancel(calculatorChoices))
		}
		sess.Fields["calc_type"] = value
		sess.State = StateEnterWeight
		return replyText(sess.ChatID, msgEnterWeight)

	case StateEnterWeight:
		weight, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
		if errReply != nil {
			return errReply
		}
		sess.Fields["weight"] = formatNumber(weight)
		if sess.Flow == FlowFat {
			sess.State = StateEnterAge
			return replyText(sess.ChatID, msgEnterAge)
		}
		sess.State = StateEnterHeight
		return replyText(sess.ChatID, msgEnterHeight)

	case StateEnterHeight:
		height, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
		if errReply != nil {
			return errReply
		}
		sess.Fields["height"] = formatNumber(height)
		if sess.Flow == FlowIMC {
			return e.completeCalculation(ctx, sess)
		}
		sess.State = StateEnterAge
		return replyText(sess.ChatID, msgEnterAge)

	case StateEnterAge:
		age, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
		if errReply != nil {
			return errReply
		}
		sess.Fields["age"] = formatNumber(age)
		sess.State = StateSelectGender
		return replyChoices(sess.ChatID, msgSelectGender, withCancel(genderChoices))

	case StateSelectGender:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokGender ||
			(value != utils.GenderMale && value != utils.GenderFemale) {
			return replyChoices(sess.ChatID, msgSelectGender, withCancel(genderChoices))
		}
		sess.Fields["gender"] = value
		if sess.Flow == FlowTDEE {
			sess.State = StateSelectActivity
			return replyChoices(sess.ChatID, msgSelectActivity, withCancel(activityChoices))
		}
		return e.completeCalculation(ctx, sess)

	case StateSelectActivity:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokActivity {
			return replyChoices(sess.ChatID, msgSelectActivity, withCancel(activityChoices))
		}
		if _, ok := utils.ActivityMultipliers[value]; !ok {
			return replyChoices(sess.ChatID, msgSelectActivity, withCancel(activityChoices))
		}
		sess.Fields["activity_level"] = value
		return e.completeCalculation(ctx, sess)
	}
	return nil
}

// completeCalculation is the single terminal write of every calculator flow.
func (e *Engine) completeCalculation(ctx context.Context, sess *Session) []Reply {
	req := CalculationRequest{
		CalcType:      sess.Fields["calc_type"],
		Gender:        sess.Fields["gender"],
		ActivityLevel: sess.Fields["activity_level"],
	}
	req.Weight, _ = strconv.ParseFloat(sess.Fields["weight"], 64)
	if raw, ok := sess.Fields["height"]; ok {
		height, _ := strconv.ParseFloat(raw, 64)
		req.Height = &height
	}
	if raw, ok := sess.Fields["age"]; ok {
		age, _ := strconv.ParseFloat(raw, 64)
		req.Age = &age
	}

	message, err := e.backend.Calculate(ctx, sess.ChatID, req)
	if err != nil {
		return e.failure(sess.ChatID, "insert_calculation", err)
	}
	e.clear(sess.ChatID)
	return replyText(sess.ChatID, message)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
