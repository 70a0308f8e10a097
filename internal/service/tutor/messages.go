package tutor

// IdleHint is the reply to free text when no mode expects it.
const IdleHint = "To get started, use one of the commands: `/chat`, `/roleplay`, `/translation`, `/practice`, `/exam`, `/dictate`, `/reading`, `/word`, `/explain`."

const (
	chatGreeting = "Oké, laten we praten! We kunnen over je dag praten of iets anders. Antwoord in het Nederlands, ik corrigeer je als het nodig is."

	roleplayUsage   = "Please specify the topic. For example: `/roleplay in de winkel`"
	roleplayFailure = "An error occurred while starting the role-playing game. Please try again."
	roleplayStart   = "Oké, laten we beginnen! We doen een rollenspel over '%s'.\n\n%s"

	translationStart       = "Oké, laten we vertalen! Translate the following text into Dutch (level %s, style: %s, topic: '%s'):\n\n"
	translationGlossary    = "The words we are practicing are: %s.\n\n"
	translationCheckFailed = "Sorry, something went wrong while checking your translation."
	translationLost        = "Please start with /translation first."

	practiceUsage       = "Invalid practice mode. Please use one of: prep, verb, word. Example: `/practice prep`"
	practiceFailure     = "An error occurred while starting the practice. Please try again."
	practiceStart       = "Oké, laten we %s-training doen! Level: %s, item: '%s'\n\nTranslate the following sentences into Dutch:\n\n**%s**"
	practiceMore        = "Here are %s practice sentences (level %s, item: '%s'):\n\n**%s**"
	practiceMoreFailure = "An error occurred while getting more practice sentences. Please try again or start a new practice."
	practiceNotActive   = "You are not in a practice session. Start one with `/practice [mode] [item]`."
	practiceLost        = "Practice session context lost. Please start a new one with `/practice [mode] [item]`."
	practiceCheckFailed = "An error occurred while checking your answer. Please try again."

	examUsage        = "Please, provide skill: `/exam reading`, `/exam writing`, `/exam speaking` or `/exam culture`."
	examInvalidSkill = "Incorrect skill. Select one from: reading, writing, speaking, culture."
	examTask         = "📘 *%s task:*\n\n%s"
	examFeedback     = "📝 *Your answer to the task '%s' has been assessed:*\n\n%s"
	examLost         = "Something went wrong with the exam task. Please try `/exam` again."

	dictateFailure     = "An error occurred while generating the dictation. Try again."
	dictateCaption     = "🎧 Dictation (level %s): write down what you hear."
	dictateCheckFailed = "Sorry, something went wrong while checking your dictation."
	dictateLost        = "Please start with /dictate first."

	lookupFailure = "An error occurred while generating the text. Try again."
	readingIntro  = "Hier is een leestekst op niveau %s over '%s':\n\n%s"
)
