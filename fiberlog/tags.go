package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagHost    = "host"
	TagURL     = "url"
	TagUA      = "ua"
	TagPid     = "pid"
	TagBody    = "body"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag extracts one log field value from the request context.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func funcTagMap() map[string]FuncTag {
	return map[string]FuncTag{
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagHost: func(c *fiber.Ctx, d *data) interface{} {
			return c.Hostname()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Body())
		},
	}
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := funcTagMap()
	selected := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			selected[tag] = ft
		}
	}
	return selected
}
