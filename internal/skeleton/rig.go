// Package skeleton poses the robot: a bone hierarchy whose joints follow
// the pose store, and the cube parts hung from those bones.
package skeleton

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"robot-scene/internal/geometry"
	"robot-scene/internal/pose"
	"robot-scene/internal/texture"
)

// NoJoint marks a bone that does not rotate with the pose.
const NoJoint pose.Joint = -1

// Bone is one node of the rig. Offset is the pivot relative to the parent.
// Parents always come before their children.
type Bone struct {
	Name   string
	Parent int
	Offset mgl64.Vec3
	Joint  pose.Joint
}

// Part is a box attached to a bone.
type Part struct {
	Name    string
	Bone    int
	Center  mgl64.Vec3 // relative to the bone pivot
	Size    mgl64.Vec3
	Texture string
	Head    bool // uses the head texture layout
}

// Rig is the robot's static description.
type Rig struct {
	Bones []Bone
	Parts []Part
}

const (
	boneRoot = iota
	boneTorso
	boneHead
	boneRightArm
	boneLeftArm
	boneRightLeg
	boneLeftLeg
)

// Robot stands at the origin on z = 0, facing -Y. Its right side is -X.
// Every joint swings about the X axis.
func Robot() *Rig {
	return &Rig{
		Bones: []Bone{
			boneRoot:     {Name: "root", Parent: -1, Joint: NoJoint},
			boneTorso:    {Name: "torso", Parent: boneRoot, Offset: mgl64.Vec3{0, 0, 2}, Joint: NoJoint},
			boneHead:     {Name: "head", Parent: boneTorso, Offset: mgl64.Vec3{0, 0, 2.4}, Joint: pose.Head},
			boneRightArm: {Name: "rightArm", Parent: boneTorso, Offset: mgl64.Vec3{-1, 0, 2.2}, Joint: pose.RightArm},
			boneLeftArm:  {Name: "leftArm", Parent: boneTorso, Offset: mgl64.Vec3{1, 0, 2.2}, Joint: pose.LeftArm},
			boneRightLeg: {Name: "rightLeg", Parent: boneRoot, Offset: mgl64.Vec3{-0.4, 0, 2}, Joint: pose.RightLeg},
			boneLeftLeg:  {Name: "leftLeg", Parent: boneRoot, Offset: mgl64.Vec3{0.4, 0, 2}, Joint: pose.LeftLeg},
		},
		Parts: []Part{
			{Name: "torso", Bone: boneTorso, Center: mgl64.Vec3{0, 0, 1.2}, Size: mgl64.Vec3{1.6, 0.8, 2.4}, Texture: texture.Metal},
			{Name: "head", Bone: boneHead, Center: mgl64.Vec3{0, 0, 0.5}, Size: mgl64.Vec3{1, 1, 1}, Texture: texture.Head, Head: true},
			{Name: "rightArm", Bone: boneRightArm, Center: mgl64.Vec3{0, 0, -1}, Size: mgl64.Vec3{0.4, 0.4, 2}, Texture: texture.Metal},
			{Name: "leftArm", Bone: boneLeftArm, Center: mgl64.Vec3{0, 0, -1}, Size: mgl64.Vec3{0.4, 0.4, 2}, Texture: texture.Metal},
			{Name: "rightLeg", Bone: boneRightLeg, Center: mgl64.Vec3{0, 0, -1}, Size: mgl64.Vec3{0.5, 0.5, 2}, Texture: texture.Metal},
			{Name: "leftLeg", Bone: boneLeftLeg, Center: mgl64.Vec3{0, 0, -1}, Size: mgl64.Vec3{0.5, 0.5, 2}, Texture: texture.Metal},
		},
	}
}

// BuildWorldMatrices computes each bone's world transform for a pose.
// The easter egg tips the whole robot backwards about its feet and scales
// the head about the neck.
func (r *Rig) BuildWorldMatrices(s pose.State) []mgl64.Mat4 {
	worlds := make([]mgl64.Mat4, len(r.Bones))
	for i, bone := range r.Bones {
		local := mgl64.Translate3D(bone.Offset.X(), bone.Offset.Y(), bone.Offset.Z())
		if bone.Joint != NoJoint {
			local = local.Mul4(mgl64.HomogRotate3DX(s.Pose.Angle(bone.Joint)))
		}

		switch i {
		case boneRoot:
			local = local.Mul4(mgl64.HomogRotate3DX(-s.Animation.FallAngle))
		case boneHead:
			hs := s.Animation.HeadScale
			if hs <= 0 || math.IsNaN(hs) {
				hs = 1
			}
			local = local.Mul4(mgl64.Scale3D(hs, hs, hs))
		}

		if bone.Parent >= 0 && bone.Parent < i {
			worlds[i] = worlds[bone.Parent].Mul4(local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// Instance is one part ready to draw.
type Instance struct {
	Name    string
	Mesh    *geometry.Mesh
	Texture string
	World   mgl64.Mat4
}

// Assemble places every part of the rig for the given pose.
func (r *Rig) Assemble(s pose.State) []Instance {
	worlds := r.BuildWorldMatrices(s)
	cube, head := geometry.Cube(), geometry.Head()

	out := make([]Instance, 0, len(r.Parts))
	for _, p := range r.Parts {
		m := cube
		if p.Head {
			m = head
		}
		local := mgl64.Translate3D(p.Center.X(), p.Center.Y(), p.Center.Z()).
			Mul4(mgl64.Scale3D(p.Size.X(), p.Size.Y(), p.Size.Z()))
		out = append(out, Instance{
			Name:    p.Name,
			Mesh:    m,
			Texture: p.Texture,
			World:   worlds[p.Bone].Mul4(local),
		})
	}
	return out
}
