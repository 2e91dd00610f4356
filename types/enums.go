package types

type Step string

const (
	StepAskLang        Step = "ask_lang"
	StepAskFullName    Step = "ask_full_name"
	StepAskPhone       Step = "ask_phone"
	StepChooseCategory Step = "choose_category"
	StepAskQuestions   Step = "ask_questions"
	StepCollectMedia   Step = "collect_media"
)
