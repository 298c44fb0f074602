package core

import "time"

func (c *Core) SetPollInterval(d time.Duration) {
	c.pollInterval = d
}
