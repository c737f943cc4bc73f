package components

import (
	"github.com/automoto/floorcollision/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is a rigid collidable backed by a single resolv object. The
// object's layer tags always mirror Layer.
type BodyData struct {
	*resolv.Object
	Layer uint32
	Mask  uint32
}

var Body = donburi.NewComponentType[BodyData]()

// NewBodyData wraps obj and tags it with layer.
func NewBodyData(obj *resolv.Object, layer, mask uint32) BodyData {
	b := BodyData{Object: obj}
	b.SetCollisionLayer(layer)
	b.SetCollisionMask(mask)
	return b
}

func (b *BodyData) CollisionLayer() uint32 { return b.Layer }
func (b *BodyData) CollisionMask() uint32  { return b.Mask }

func (b *BodyData) SetCollisionLayer(layer uint32) {
	b.Layer = layer
	retag(b.Object, layer)
}

func (b *BodyData) SetCollisionMask(mask uint32) {
	b.Mask = mask
}

func retag(obj *resolv.Object, layer uint32) {
	if obj == nil {
		return
	}
	obj.RemoveTags(tags.AllLayerTags()...)
	obj.AddTags(tags.LayerTags(layer)...)
}
