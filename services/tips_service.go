package services

import "time"

var tips = []string{
	"🌾 Inclua grãos integrais como aveia para mais fibras!",
	"🥜 Nozes como amêndoas são ótimas para gorduras saudáveis.",
	"💧 Mantenha-se hidratado: busque 2L de água por dia.",
	"🌱 Experimente adicionar soja para proteína vegetal.",
}

// TipOfTheDay rotates deterministically by day of month.
func TipOfTheDay(now time.Time) string {
	return tips[now.Day()%len(tips)]
}
