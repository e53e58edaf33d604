package textutil

import (
	"fmt"
	"math/rand"
)

// Welcome greetings rotated on /start so repeat visitors don't always
// hear the same opening. Each takes the optional name part.
var welcomePool = []string{
	"¡Hola%s! Soy María, tu asistente especializada en manejo de ansiedad. Estoy aquí para escucharte y acompañarte. Cuéntame, ¿qué te ha traído hoy hasta aquí?",
	"¡Qué gusto conocerte%s! Soy María y me especializo en ayudar con la ansiedad. Este es tu espacio seguro para compartir lo que sientes. ¿Cómo has estado últimamente?",
	"¡Hola%s, bienvenido! Soy María, y estoy aquí para acompañarte en el manejo de la ansiedad. Me alegra que hayas decidido buscar apoyo. ¿Qué te gustaría conversar hoy?",
	"¡Hola%s! Me llamo María y soy tu asistente especializada en ansiedad. Reconozco tu valentía al estar aquí. ¿Qué es lo que más te inquieta hoy?",
	"¡Qué bueno tenerte aquí%s! Soy María, y mi pasión es ayudar a las personas a manejar la ansiedad. Este es un espacio sin juicios. ¿Qué me quieres contar?",
	"¡Hola%s! Soy María, tu guía en técnicas para manejar la ansiedad. Me alegra que estés aquí en este momento. ¿Cómo llegaste hasta esta conversación?",
	"¡Bienvenido%s! Soy María, especialista en herramientas para la ansiedad. Este momento que compartes conmigo es importante. ¿Qué te motivó a buscar apoyo hoy?",
	"¡Hola%s! Soy María, especializada en acompañamiento para la ansiedad. Es un honor que confíes en mí para este momento. ¿Cómo puedo ayudarte hoy?",
}

// WelcomeMessage picks a random personalized greeting for the user.
func WelcomeMessage(username string) string {
	namePart := ""
	if username != "" && username != "Usuario" {
		namePart = " " + username
	}
	return fmt.Sprintf(welcomePool[rand.Intn(len(welcomePool))], namePart)
}
