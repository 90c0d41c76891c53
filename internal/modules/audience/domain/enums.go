//go:generate go tool go-enum --file=$GOFILE --names --nocase

package domain

// SegmentID identifies one of the fixed behavioral segments
// ENUM(explorer,builder,grinder,lurker,degen)
type SegmentID string

// Channel represents a delivery surface
// ENUM(discord,telegram,line,inapp)
type Channel string

// Scope represents the delivery scope of a campaign
// ENUM(dm,group,global)
type Scope string

// Schedule represents when a campaign is delivered
// ENUM(immediate,scheduled)
type Schedule string

// LastActive represents a recency bucket
// ENUM(today,3days,7days,inactive)
type LastActive string

// AudienceType selects between the whole population and a filtered one
// ENUM(global,custom)
type AudienceType string
