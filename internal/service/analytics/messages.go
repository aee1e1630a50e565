package analytics

const (
	msgFirstActivity = "Complete your first activity to receive personalised recommendations."

	msgReviewBasics   = "Your performance needs to improve. Review the basic topics."
	msgPracticeSimple = "Spend more time practising simple exercises."
	msgAskTeacher     = "Consider asking your teacher for help."

	msgKeepPracticing = "You are on the right track. Keep practising regularly."
	msgFocusMistakes  = "Focus on the topics where you made the most mistakes."

	msgExcellent  = "Excellent work! Keep it up."
	msgTryHarder  = "Try activities of a higher difficulty."
	msgManageTime = "Try to manage your time better during activities."
)
