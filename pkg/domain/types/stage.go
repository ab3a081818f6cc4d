package types

// Stage identifies one step of the release pipeline. Stage names appear in
// logs and in failure diagnostics.
type Stage string

const (
	StageValidate Stage = "validate"
	StageBuild    Stage = "build"
	StageVerify   Stage = "verify"
	StageNotarize Stage = "notarize"
	StageStaple   Stage = "staple"
	StageArchive  Stage = "archive"
	StageSign     Stage = "sign"
	StageReport   Stage = "report"
	StagePublish  Stage = "publish"
	StageAnnounce Stage = "announce"
)

func (s Stage) String() string {
	return string(s)
}
