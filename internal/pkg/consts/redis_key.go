package consts

const (
	MoodCountsKey  = "mood:counts:"
	MoodDirtyKey   = "mood:recount:dirty"
	JournalFeedKey = "journal:feed:"
)

const (
	MoodRecountLock = "lock:mood:recount:"
)
