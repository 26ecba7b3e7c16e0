package bot

// User-facing message catalog (Portuguese).
const (
	msgWelcomeAuthed = "Bem-vindo ao NutriBot! 😊\n" +
		"Use os comandos no menu para rastrear refeições, água, metas e mais.\n" +
		"Ex.: /meals, /goals, /water, /summary, /calculations, /reminders, /tips"
	msgWelcomeAnon = "Bem-vindo ao NutriBot! 😊\n" +
		"Faça login ou cadastre-se para acessar todas as funcionalidades.\n" +
		"Você também pode usar sem login para ver dicas ou a tabela de alimentos."

	msgNeedLogin = "Você precisa estar logado para usar este comando. Use /login ou /signup."
	msgAPIError  = "Erro ao conectar com a API."
	msgCancelled = "❌ Ação cancelada."

	msgSelectMealType = "🍽️ Selecione o tipo de refeição:"
	msgSelectFood     = "🥗 Selecione um alimento:"
	msgSearchPrompt   = "🔍 Digite o nome do alimento para buscar:"
	msgNoFoodsFound   = "🔍 Nenhum alimento encontrado. Tente outro termo."
	msgEnterQuantity  = "📏 Digite a quantidade (gramas):"
	msgMealCancelled  = "❌ Registro de refeição cancelado."

	msgSelectNutrient = "🎯 Selecione o nutriente para definir a meta:"
	msgEnterWater     = "💧 Digite a quantidade de água (ml):"

	msgInvalidNumber  = "⚠️ Por favor, digite um número válido."
	msgPositiveNumber = "⚠️ Por favor, digite um número positivo."
	msgInvalidTime    = "⚠️ Formato de horário inválido. Use HH:MM (ex.: 08:00)."

	msgSelectCalculator = "🧮 Selecione uma calculadora:"
	msgEnterWeight      = "⚖️ Digite seu peso (kg):"
	msgEnterHeight      = "📏 Digite sua altura (cm):"
	msgEnterAge         = "🎂 Digite sua idade (anos):"
	msgSelectGender     = "🚻 Selecione seu sexo:"
	msgSelectActivity   = "🏃 Selecione seu nível de atividade:"

	msgSelectReminderType = "⏰ Selecione o tipo de lembrete:"
	msgEnterReminderTime  = "🕒 Digite o horário do lembrete (formato HH:MM, ex.: 08:00):"

	msgEnterUsername  = "Por favor, envie seu nome de usuário."
	msgEnterPassword  = "Agora, envie sua senha."
	msgSignupOK       = "Cadastro realizado com sucesso! Use /start para continuar."
	msgSignupTaken    = "Erro ao cadastrar. Tente outro nome de usuário."
	msgLoginOK        = "Login realizado com sucesso! Use /start para continuar."
	msgLoginBad       = "Usuário ou senha incorretos. Tente novamente."
	msgSummaryError   = "Erro ao obter resumo."
	msgTipUnavailable = "Não foi possível obter a dica do dia."
)
