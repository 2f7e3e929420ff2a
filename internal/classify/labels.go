package classify

// Exam type labels.
const (
	ExamKrokEnglish   = "Krok English"
	ExamKrokUkrainian = "Крок Українська"
	ExamEDKI          = "ЄДКІ"
	ExamAMPS          = "АМПС"
	ExamMoscow        = "Московська"
)

// Level labels.
const (
	LevelKrok1        = "КРОК 1"
	LevelKrok2        = "КРОК 2"
	LevelKrok3        = "КРОК 3"
	LevelBachelors    = "ЄДКІ Бакалаври"
	LevelProfessional = "ЄДКІ Фахова передвища освіта"
	LevelOther        = "Інше"
)
