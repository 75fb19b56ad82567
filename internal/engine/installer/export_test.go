package installer

import "time"

// SetClock replaces the installer's clock and run id source.
func (i *Installer) SetClock(now func() time.Time, newID func() string) {
	i.now = now
	i.newID = newID
}
