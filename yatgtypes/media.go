package yatgtypes

type PhotoSize struct {
	FileID       string
	FileUniqueID string
	Width        int
	Height       int
	FileSize     *int64
}

type Audio struct {
	FileID       string
	FileUniqueID string
	Duration     int
	Performer    *string
	Title        *string
	MimeType     *string
	FileSize     *int64
	Thumb        *PhotoSize
}

type Document struct {
	FileID       string
	FileUniqueID string
	Thumb        *PhotoSize
	FileName     *string
	MimeType     *string
	FileSize     *int64
}

type Video struct {
	FileID       string
	FileUniqueID string
	Width        int
	Height       int
	Duration     int
	Thumb        *PhotoSize
	MimeType     *string
	FileSize     *int64
}

type Animation struct {
	FileID       string
	FileUniqueID string
	Width        int
	Height       int
	Duration     int
	Thumb        *PhotoSize
	FileName     *string
	MimeType     *string
	FileSize     *int64
}

type Voice struct {
	FileID       string
	FileUniqueID string
	Duration     int
	MimeType     *string
	FileSize     *int64
}

type VideoNote struct {
	FileID       string
	FileUniqueID string
	Length       int
	Duration     int
	Thumb        *PhotoSize
	FileSize     *int64
}

type Sticker struct {
	FileID       string
	FileUniqueID string
	Width        int
	Height       int
	IsAnimated   bool
	Thumb        *PhotoSize
	Emoji        *string
	SetName      *string
	MaskPosition *MaskPosition
	FileSize     *int64
}

type MaskPosition struct {
	Point  string
	XShift float64
	YShift float64
	Scale  float64
}

type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    *string
	UserID      *int64
	VCard       *string
}

type Location struct {
	Longitude float64
	Latitude  float64
}

type Venue struct {
	Location       Location
	Title          string
	Address        string
	FoursquareID   *string
	FoursquareType *string
}

type PollType string

const (
	PollTypeRegular PollType = "regular"
	PollTypeQuiz    PollType = "quiz"
)

type PollOption struct {
	Text       string
	VoterCount int
}

type Poll struct {
	ID                    string
	Question              string
	Options               []PollOption
	TotalVoterCount       *int
	IsClosed              bool
	IsAnonymous           bool
	Type                  PollType
	AllowsMultipleAnswers bool
	CorrectOptionID       *int
}

type PollAnswer struct {
	PollID    string
	User      User
	OptionIDs []int
}

type Game struct {
	Title        string
	Description  string
	Photo        []PhotoSize
	Text         *string
	TextEntities []MessageEntity
	Animation    *Animation
}

// File is the result of getFile. FilePath is what the download URL is built from.
type File struct {
	FileID       string
	FileUniqueID string
	FileSize     *int64
	FilePath     *string
}

type UserProfilePhotos struct {
	TotalCount int
	Photos     [][]PhotoSize
}
