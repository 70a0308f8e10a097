package command

type help struct {
	description string
	emoji       string
	text        string
	usage       string
	examples    []string
}

// tutorCommands is the order commands are registered and shown in.
var tutorCommands = []string{
	"chat", "roleplay", "translation", "practice", "more",
	"exam", "dictate", "reading", "word", "explain",
}

var helpTopics = map[string]help{
	"chat": {
		description: "Free conversation in Dutch",
		emoji:       "💬",
		text:        "Talk about anything in Dutch. Mistakes are corrected with a short explanation in English.",
		usage:       "/chat",
	},
	"roleplay": {
		description: "Role-play a situation",
		emoji:       "🎭",
		text:        "Play out an everyday situation. The bot starts the conversation and corrects your mistakes.",
		usage:       "/roleplay <topic>",
		examples:    []string{"/roleplay in de winkel", "/roleplay bij de huisarts"},
	},
	"translation": {
		description: "Translate a short text into Dutch",
		emoji:       "📝",
		text: "Generate a short English text to translate into Dutch.\n" +
			"Styles:\n" +
			"• A — *Alice* (playful, slightly absurd)\n" +
			"• N — *Nabokov* (dry, minimal, surreal)\n" +
			"• F — *Fantasy* (modern fairytale tone)\n" +
			"• T — *Travel* (travel diary style)\n" +
			"• L — *Learning* (textbook style, supports an optional topic)",
		usage:    "/translation [level] [style] [topic]",
		examples: []string{"/translation B1 N", "/translation B2 L food"},
	},
	"practice": {
		description: "Practise prepositions, verbs or words",
		emoji:       "🎯",
		text: "Translate three sentences built around one preposition, verb or word. " +
			"Without an item the bot picks a common one. Use /more for new sentences.",
		usage:    "/practice [level] <prep|verb|word> [item]",
		examples: []string{"/practice prep op", "/practice B1 verb hebben", "/practice word"},
	},
	"more": {
		description: "More sentences for the current practice",
		emoji:       "➕",
		text:        "Get three new sentences for the item you are practising.",
		usage:       "/more",
	},
	"exam": {
		description: "NT2 exam task",
		emoji:       "📘",
		text:        "Get an NT2 A2 practice task and send your answer for an assessment.",
		usage:       "/exam <reading|writing|speaking|culture>",
		examples:    []string{"/exam writing", "/exam culture"},
	},
	"dictate": {
		description: "Listen and write a sentence",
		emoji:       "🎧",
		text: "Listen to a Dutch sentence and write it down to practise listening and spelling.\n" +
			"With a normal level (A1-C2) you get everyday sentences. " +
			"With level N you hear sentences with numbers: times, dates, prices, addresses or phone numbers.",
		usage:    "/dictate [level|N]",
		examples: []string{"/dictate A2", "/dictate N"},
	},
	"reading": {
		description: "Short reading text with audio",
		emoji:       "📖",
		text: "Read a short Dutch text and listen to its audio version.\n" +
			"With a regular topic you get a story on that theme. " +
			"With the topic `today` you get an event on this day in a random year between 1700 and 2030. " +
			"If the year lies in the future, the event is invented.",
		usage:    "/reading [level] [topic]",
		examples: []string{"/reading A2 liefde", "/reading today"},
	},
	"word": {
		description: "Dictionary entry with examples",
		emoji:       "📚",
		text:        "Get a definition, example sentences and a memory aid for a Dutch word.",
		usage:       "/word [word]",
		examples:    []string{"/word gezellig"},
	},
	"explain": {
		description: "Grammar explanation",
		emoji:       "🔤",
		text:        "Get a simple grammar explanation of a Dutch sentence or rule.",
		usage:       "/explain [sentence or rule]",
		examples:    []string{"/explain Ik heb het boek gelezen."},
	},
}
