package domain

import (
	"errors"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Route describes how one activity is dispatched.
type Route struct {
	// Activity is the activity type name delivered by the queue.
	Activity string
	// Channel is the publish channel the value is announced on.
	Channel string
	// Default is used when a task carries no parameter. Nil means no default.
	Default *string
	// Cache enables content-addressed caching, change detection and persistence.
	Cache bool
	// Resource is the persisted resource name. Derived from Channel when empty.
	Resource string
}

// ReplyChannel returns the reply queue name paired with the route's channel.
func (r Route) ReplyChannel() string {
	return ReplyChannel(r.Channel)
}

// ReplyChannel returns the reply queue name for channel.
func ReplyChannel(channel string) string {
	return channel + ReplySuffix
}

// ResourceName derives a persisted resource name from a channel name by
// dropping its leading verb segment: "set-loadbalancer" becomes "loadbalancer".
func ResourceName(channel string) string {
	if _, rest, ok := strings.Cut(channel, "-"); ok && rest != "" {
		return rest
	}
	return channel
}

// RoutingTable is the immutable activity to route mapping.
type RoutingTable struct {
	routes map[string]Route
	order  []string
}

// NewRoutingTable validates routes and builds a RoutingTable.
// Validation is eager so lookup failures cannot surface on first use.
func NewRoutingTable(routes []Route) (*RoutingTable, error) {
	if len(routes) == 0 {
		return nil, errors.Join(ErrInvalidRoutes, zerr.New("no activities configured"))
	}

	t := &RoutingTable{routes: make(map[string]Route, len(routes))}
	channels := make(map[string]string, len(routes))
	resources := make(map[string]string, len(routes))

	for _, r := range routes {
		if r.Activity == "" {
			return nil, errors.Join(ErrInvalidRoutes, zerr.New("activity name is empty"))
		}
		if _, dup := t.routes[r.Activity]; dup {
			return nil, errors.Join(ErrInvalidRoutes, zerr.With(zerr.New("duplicate activity"), "activity", r.Activity))
		}
		if r.Channel == "" {
			return nil, errors.Join(ErrInvalidRoutes, zerr.With(zerr.New("activity has no channel"), "activity", r.Activity))
		}
		if other, dup := channels[r.Channel]; dup {
			return nil, errors.Join(ErrInvalidRoutes, zerr.With(
				zerr.With(zerr.New("channel mapped by more than one activity"), "channel", r.Channel),
				"activities", other+","+r.Activity,
			))
		}
		channels[r.Channel] = r.Activity

		if r.Cache {
			if r.Resource == "" {
				r.Resource = ResourceName(r.Channel)
			}
			if strings.ContainsAny(r.Resource, `/\`) || r.Resource == "." || r.Resource == ".." {
				return nil, errors.Join(ErrInvalidRoutes, zerr.With(zerr.New("resource name must be a plain file name"), "resource", r.Resource))
			}
			if other, dup := resources[r.Resource]; dup {
				return nil, errors.Join(ErrInvalidRoutes, zerr.With(
					zerr.With(zerr.New("resource persisted by more than one activity"), "resource", r.Resource),
					"activities", other+","+r.Activity,
				))
			}
			resources[r.Resource] = r.Activity
		}

		t.routes[r.Activity] = r
		t.order = append(t.order, r.Activity)
	}

	slices.Sort(t.order)
	return t, nil
}

// Lookup returns the route for activity.
func (t *RoutingTable) Lookup(activity string) (Route, bool) {
	r, ok := t.routes[activity]
	return r, ok
}

// Routes returns all routes sorted by activity name.
func (t *RoutingTable) Routes() []Route {
	out := make([]Route, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.routes[name])
	}
	return out
}

// CachedActivities returns the sorted names of cache-enabled activities.
func (t *RoutingTable) CachedActivities() []string {
	var out []string
	for _, name := range t.order {
		if t.routes[name].Cache {
			out = append(out, name)
		}
	}
	return out
}

// DefaultRoutes is the built-in load balancer routing table used when the
// configuration does not list any activities.
func DefaultRoutes() []Route {
	const prefix = "LoadBalancingVmActivities."
	return []Route{
		{Activity: prefix + "getCloudWatchMetrics", Channel: "get-cloudwatch-metrics", Default: ptr("GetCloudWatchMetrics")},
		{Activity: prefix + "getInstanceStatus", Channel: "get-instance-status", Default: ptr("GetInstanceStatus")},
		{Activity: prefix + "setLoadBalancer", Channel: "set-loadbalancer", Cache: true},
		{Activity: prefix + "setPolicy", Channel: "set-policy", Cache: true},
	}
}

func ptr(s string) *string {
	return &s
}
