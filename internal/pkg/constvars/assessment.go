package constvars

// Response-map keys shared by onboarding intake and weekly check-ins.
const (
	QuestionAnxietyFrequency    = "anxietyFrequency"
	QuestionWorryFrequency      = "worryFrequency"
	QuestionDepressionFrequency = "depressionFrequency"
	QuestionAnhedoniaFrequency  = "anhedoniaFrequency"

	QuestionSleepQuality          = "sleepQuality"
	QuestionSuicidalThoughts      = "suicidalThoughts"
	QuestionSelfHarm              = "selfHarm"
	QuestionSubstanceUse          = "substanceUse"
	QuestionSocialWithdrawal      = "socialWithdrawal"
	QuestionFunctioningImpairment = "functioningImpairment"
	QuestionFunctioningLevel      = "functioningLevel"
)

const (
	AnswerYes = "yes"
	AnswerNo  = "no"

	SleepQualityExcellent = "excellent"
	SleepQualityGood      = "good"
	SleepQualityFair      = "fair"
	SleepQualityPoor      = "poor"

	SubstanceUseDecreased     = "decreased"
	SubstanceUseSame          = "same"
	SubstanceUseIncreased     = "increased"
	SubstanceUseNotApplicable = "not-applicable"

	SocialWithdrawalSignificant = "significant"
	FunctioningImpairmentSevere = "severe"
)

const (
	WeeklyAssessmentIntervalDays = 7
)

// Journal mood vocabulary.
const (
	MoodVeryLow = "very-low"
	MoodLow     = "low"
	MoodOkay    = "okay"
	MoodGood    = "good"
	MoodGreat   = "great"
)
