package bot

const startText = "¡Hola! Soy tu bot Gemini 🤖\n\n" +
	"Comandos disponibles:\n" +
	"• /planalimentos – Plan de alimentación base\n" +
	"• /planentrenamiento – Rutina semanal sugerida\n" +
	"• /seguimientopeso 115.2 – Guarda tu peso y te muestra el cambio\n" +
	"• /recordatorios HH:MM texto – Te recuerdo todos los días\n" +
	"• Escribime cualquier cosa y te contesto con Gemini"

const dietPlanText = "Plan de alimentación base (orientativo):\n" +
	"• Desayuno: huevos + tostadas integrales + café/té\n" +
	"• Almuerzo: proteína magra (pollo/pescado) + verduras cocidas + quinoa/arroz integral\n" +
	"• Merienda: yogur natural o queso magro + frutos secos (pequeña porción)\n" +
	"• Cena: carne magra o legumbres + puré de calabaza/batata + verduras cocidas\n" +
	"• Agua: 2–2.5L/día • Evitar ultraprocesados • 80–100g proteína/día aprox.\n" +
	"Si querés, después lo personalizamos con tus restricciones."

const trainingPlanText = "Plan de entrenamiento (base, 5 días):\n" +
	"• Lunes: Fuerza cuerpo completo (40–60’)\n" +
	"• Martes: Cardio suave 30–45’ (caminar/bici) + movilidad 10’\n" +
	"• Miércoles: Fuerza (énfasis tren superior) 40–60’\n" +
	"• Jueves: HIIT liviano 20’ + core 10’ + movilidad 10’\n" +
	"• Viernes: Fuerza (énfasis tren inferior) 40–60’\n" +
	"• Sábado/Domingo: actividad recreativa + estiramientos 15’\n" +
	"Progresá +5–10% volumen/2–3 semanas. Si querés, lo ajusto a tu equipo/tiempos."

const weightUsageText = "Usá: /seguimientopeso 115.2"

const reminderUsageText = "Usá: /recordatorios HH:MM tu recordatorio (ej: /recordatorios 09:00 tomar agua)"

const reminderEmptyText = "Decime qué querés que te recuerde 😉"

const reminderFailedText = "No pude agendar el recordatorio. Probá de nuevo."

const apologyText = "Ups, falló la consulta a Gemini. Probá de nuevo en un rato."
