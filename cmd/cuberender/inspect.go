package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"quat-cube-renderer/rotation"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	angle float64 // degrees
	axis  string
	point string
	dump  bool
}

func newInspectCommand() *cobra.Command {
	o := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the quaternion and matrices of a rotation",
		Example: `  cuberender inspect --angle 90 --axis 0,0,1 --point 1,0,0
  cuberender inspect --angle 45 --axis 1,1,0 --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&o.angle, "angle", 90, "Rotation angle in degrees")
	fs.StringVar(&o.axis, "axis", "0,0,1", "Rotation axis as x,y,z (normalized before use)")
	fs.StringVar(&o.point, "point", "1,0,0", "Point to rotate as x,y,z")
	fs.BoolVar(&o.dump, "dump", false, "Dump full Go values instead of the summary")
	return cmd
}

func parseDouble3(s string) (rotation.Double3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rotation.Double3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rotation.Double3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return rotation.NewDouble3(v[0], v[1], v[2]), nil
}

func (o *inspectOptions) run(out io.Writer) error {
	axis, err := parseDouble3(o.axis)
	if err != nil {
		return fmt.Errorf("--axis: %w", err)
	}
	if axis.Norm() == 0 {
		return fmt.Errorf("--axis: zero vector has no direction")
	}
	point, err := parseDouble3(o.point)
	if err != nil {
		return fmt.Errorf("--point: %w", err)
	}

	q := rotation.FromEulerAngle(o.angle*math.Pi/180, axis.Unit())
	m := q.RotationMatrix()
	back := m.ToQuaternion()

	if o.dump {
		spew.Fdump(out, q, m, q.ToMatrix(), back, point.RotateQuaternion(q))
		return nil
	}

	fmt.Fprintf(out, "quaternion     %s\n", formatQuat(q))
	fmt.Fprintf(out, "norm           %.9f\n", q.Norm())
	fmt.Fprintln(out, "rotation matrix")
	for r := 0; r < 3; r++ {
		fmt.Fprintf(out, "  % .6f % .6f % .6f\n", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	fmt.Fprintln(out, "embedding")
	e := q.ToMatrix()
	for r := 0; r < 4; r++ {
		fmt.Fprintf(out, "  % .6f % .6f % .6f % .6f\n", e.At(r, 0), e.At(r, 1), e.At(r, 2), e.At(r, 3))
	}
	fmt.Fprintf(out, "round trip     %s (same rotation: %v)\n", formatQuat(back), back.SameRotation(q, 1e-9))

	pq, pm := point.RotateQuaternion(q), point.RotateMatrix(m)
	fmt.Fprintf(out, "point          (% .6f, % .6f, % .6f)\n", point.X, point.Y, point.Z)
	fmt.Fprintf(out, "  by quaternion (% .6f, % .6f, % .6f)\n", pq.X, pq.Y, pq.Z)
	fmt.Fprintf(out, "  by matrix     (% .6f, % .6f, % .6f)\n", pm.X, pm.Y, pm.Z)
	return nil
}

func formatQuat(q rotation.Quaternion) string {
	return fmt.Sprintf("(% .6f, % .6f, % .6f, % .6f)", q.A, q.B, q.C, q.D)
}
