package resources

import publicresources "github.com/looprevenue/loop-cms/resources"

type (
	Type    = publicresources.Type
	Summary = publicresources.Summary
	Query   = publicresources.Query
	Service = publicresources.Service
)

const (
	TypePage    = publicresources.TypePage
	TypeBlog    = publicresources.TypeBlog
	TypePodcast = publicresources.TypePodcast
)
