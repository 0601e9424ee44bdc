package model

// Voice identifiers (provider prebuilt voices)
type Voice string

const (
	VoiceAlgenib  Voice = "Algenib"
	VoiceAchernar Voice = "Achernar"
)

var ValidVoices = []Voice{VoiceAlgenib, VoiceAchernar}

// Voice types for song requests
type VoiceType string

const (
	VoiceTypeMale   VoiceType = "male"
	VoiceTypeFemale VoiceType = "female"
)

var ValidVoiceTypes = []VoiceType{VoiceTypeMale, VoiceTypeFemale}

// PrebuiltVoice maps a voice type to a provider voice identifier.
func (v VoiceType) PrebuiltVoice() Voice {
	if v == VoiceTypeMale {
		return VoiceAlgenib
	}
	return VoiceAchernar
}

// Speech moods
type Mood string

const (
	MoodNone     Mood = "none"
	MoodSad      Mood = "sad"
	MoodAngry    Mood = "angry"
	MoodComedy   Mood = "comedy"
	MoodRomantic Mood = "romantic"
)

var ValidMoods = []Mood{MoodNone, MoodSad, MoodAngry, MoodComedy, MoodRomantic}

// Arabic dialects
type Dialect string

const (
	DialectEgyptian Dialect = "egyptian"
	DialectTunisian Dialect = "tunisian"
	DialectSaudi    Dialect = "saudi"
	DialectKuwaiti  Dialect = "kuwaiti"
	DialectLebanese Dialect = "lebanese"
	DialectLibyan   Dialect = "libyan"
)

var ValidDialects = []Dialect{
	DialectEgyptian, DialectTunisian, DialectSaudi,
	DialectKuwaiti, DialectLebanese, DialectLibyan,
}

// Languages
type Language string

const (
	LanguageArabic  Language = "arabic"
	LanguageEnglish Language = "english"
	LanguageSpanish Language = "spanish"
)

var ValidLanguages = []Language{LanguageArabic, LanguageEnglish, LanguageSpanish}

// Song types
type SongType string

const (
	SongTypeRomantic  SongType = "romantic"
	SongTypeChildren  SongType = "children"
	SongTypeRap       SongType = "rap"
	SongTypeReligious SongType = "religious"
)

var ValidSongTypes = []SongType{
	SongTypeRomantic, SongTypeChildren, SongTypeRap, SongTypeReligious,
}

// Music styles
type MusicStyle string

const (
	MusicStylePiano   MusicStyle = "piano"
	MusicStyleOud     MusicStyle = "oud"
	MusicStyleElectro MusicStyle = "electro"
	MusicStyleKpop    MusicStyle = "kpop"
)

var ValidMusicStyles = []MusicStyle{
	MusicStylePiano, MusicStyleOud, MusicStyleElectro, MusicStyleKpop,
}

// Job status
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)
