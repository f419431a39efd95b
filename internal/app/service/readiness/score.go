package readiness

// Entry is one day of self-reported metrics. Optional fields are pointers;
// nil falls back to the documented default.
type Entry struct {
	SleepHours   *float64
	StressLevel  *int
	EnergyFocus  *int
	TrainedToday bool
	RPE          *int
}

// Defaults applied when a metric was skipped.
const (
	defaultSleepHours  = 7.0
	defaultStressLevel = 30
	defaultEnergyFocus = 3
	defaultRPE         = 5
)

func (e *Entry) sleepHours() float64 {
	if e.SleepHours != nil {
		return *e.SleepHours
	}
	return defaultSleepHours
}

func (e *Entry) stressLevel() int {
	if e.StressLevel != nil {
		return *e.StressLevel
	}
	return defaultStressLevel
}

func (e *Entry) energyFocus() int {
	if e.EnergyFocus != nil {
		return *e.EnergyFocus
	}
	return defaultEnergyFocus
}

func (e *Entry) rpe() int {
	if e.RPE != nil {
		return *e.RPE
	}
	return defaultRPE
}

// Score computes the 0-100 readiness score for today. yesterday may be nil
// when no previous log exists. Deterministic and total: any well-formed
// input yields a value.
func Score(today Entry, yesterday *Entry) int {
	score := 100

	// The 7h boundary belongs to the penalized band: the documented default
	// of 7h scores 85 with the other defaults, landing exactly on the
	// ELITE threshold. Only sleep beyond 7h goes penalty-free.
	switch sleep := today.sleepHours(); {
	case sleep < 5:
		score -= 35
	case sleep < 6:
		score -= 20
	case sleep <= 7:
		score -= 10
	}

	switch stress := today.stressLevel(); {
	case stress > 80:
		score -= 20
	case stress > 60:
		score -= 10
	}

	switch today.energyFocus() {
	case 1:
		score -= 25
	case 2:
		score -= 15
	case 3:
		score -= 5
	case 5:
		score += 5
	}

	// Recovery debt from yesterday's training, scaled by its RPE.
	if yesterday != nil && yesterday.TrainedToday {
		switch rpe := yesterday.rpe(); {
		case rpe >= 8:
			score -= 15
		case rpe >= 5:
			score -= 10
		default:
			score -= 5
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

type Level string

const (
	LevelElite    Level = "ELITE"
	LevelAlto     Level = "ALTO"
	LevelModerado Level = "MODERADO"
	LevelRisco    Level = "RISCO"
)

// Classification is the fixed status label and ordered recommendation list
// for a score band.
type Classification struct {
	Level           Level    `json:"level"`
	Label           string   `json:"label"`
	Recommendations []string `json:"recommendations"`
}

var classifications = map[Level]Classification{
	LevelElite: {
		Level: LevelElite,
		Label: "Pronto para performar",
		Recommendations: []string{
			"Treino pesado liberado",
			"Bom dia para buscar progressão de carga",
		},
	},
	LevelAlto: {
		Level: LevelAlto,
		Label: "Boa prontidão",
		Recommendations: []string{
			"Treine normalmente",
			"Mantenha a rotina de sono",
		},
	},
	LevelModerado: {
		Level: LevelModerado,
		Label: "Prontidão moderada",
		Recommendations: []string{
			"Reduza o volume do treino",
			"Priorize 7-8h de sono hoje",
			"Evite séries até a falha",
		},
	},
	LevelRisco: {
		Level: LevelRisco,
		Label: "Risco de overtraining",
		Recommendations: []string{
			"Descanso ou recuperação ativa",
			"Foque em sono e hidratação",
			"Reavalie a carga da semana",
		},
	},
}

// Classify maps a score to its band. Bands are contiguous and exhaustive
// over [0,100]: >=85 ELITE, >=65 ALTO, >=40 MODERADO, else RISCO.
func Classify(score int) Classification {
	switch {
	case score >= 85:
		return classifications[LevelElite]
	case score >= 65:
		return classifications[LevelAlto]
	case score >= 40:
		return classifications[LevelModerado]
	default:
		return classifications[LevelRisco]
	}
}
