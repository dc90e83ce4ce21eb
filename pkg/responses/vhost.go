// Package responses parses management API responses into typed entities.
//
// Every entity is decoded through a static table that maps wire keys to Go
// fields, so renames (user -> Username, messages -> MessageCount) and
// coercions (os_pid as a numeric string) are declared in one place per
// entity. Parsing is all-or-nothing: any missing required key, malformed
// value or unknown enum spelling returns a *ParseError and no entity.
package responses

// VirtualHostMetadata mirrors the "metadata" object of a virtual host.
type VirtualHostMetadata struct {
	Tags             *[]string `json:"tags,omitempty"`
	Description      *string   `json:"description,omitempty"`
	DefaultQueueType *string   `json:"default_queue_type,omitempty"`
}

type VirtualHost struct {
	Name             string              `json:"name"`
	Tags             *[]string           `json:"tags,omitempty"`
	Description      *string             `json:"description,omitempty"`
	DefaultQueueType *string             `json:"default_queue_type,omitempty"`
	Metadata         VirtualHostMetadata `json:"metadata"`
}

type User struct {
	Name         string   `json:"name"`
	Tags         []string `json:"tags"`
	PasswordHash string   `json:"password_hash"`
}

var virtualHostMetadataResource = resource[VirtualHostMetadata]{
	name: "virtual host metadata",
	fields: []field[VirtualHostMetadata]{
		optional("tags", strList, func(m *VirtualHostMetadata, v *[]string) { m.Tags = v }),
		optional("description", str, func(m *VirtualHostMetadata, v *string) { m.Description = v }),
		optional("default_queue_type", str, func(m *VirtualHostMetadata, v *string) { m.DefaultQueueType = v }),
	},
}

var virtualHostResource = resource[VirtualHost]{
	name: "virtual host",
	fields: []field[VirtualHost]{
		required("name", str, func(vh *VirtualHost, v string) { vh.Name = v }),
		optional("tags", strList, func(vh *VirtualHost, v *[]string) { vh.Tags = v }),
		optional("description", str, func(vh *VirtualHost, v *string) { vh.Description = v }),
		optional("default_queue_type", str, func(vh *VirtualHost, v *string) { vh.DefaultQueueType = v }),
		required("metadata", nested(virtualHostMetadataResource), func(vh *VirtualHost, v VirtualHostMetadata) { vh.Metadata = v }),
	},
}

var userResource = resource[User]{
	name: "user",
	fields: []field[User]{
		required("name", str, func(u *User, v string) { u.Name = v }),
		required("tags", tagList, func(u *User, v []string) { u.Tags = v }),
		required("password_hash", str, func(u *User, v string) { u.PasswordHash = v }),
	},
}

func ParseVirtualHost(raw []byte) (*VirtualHost, error) {
	return virtualHostResource.one(raw)
}

func ParseVirtualHostList(raw []byte) ([]VirtualHost, error) {
	return virtualHostResource.list(raw)
}

func ParseUser(raw []byte) (*User, error) {
	return userResource.one(raw)
}

func ParseUserList(raw []byte) ([]User, error) {
	return userResource.list(raw)
}
