package drill

import "time"

// cooldownDoneMsg is sent when the post-mistake cooldown ends.
type cooldownDoneMsg time.Time
