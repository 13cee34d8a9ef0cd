package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
)

// Swapper presents the back buffer, usually the platform window.
type Swapper interface {
	SwapBuffers()
}

// quadVertices is the unit quad the rectangles are scaled from.
var quadVertices = []math.Vertex3D{
	{Position: math.NewVec3(-0.5, -0.5, 0)},
	{Position: math.NewVec3(0.5, -0.5, 0)},
	{Position: math.NewVec3(0.5, 0.5, 0)},
	{Position: math.NewVec3(-0.5, 0.5, 0)},
}

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

// OpenGLRenderer draws quads with a single shader program and one
// vertex/index buffer pair.
type OpenGLRenderer struct {
	swapper        Swapper
	vertexSource   string
	fragmentSource string

	program   uint32
	vao       uint32
	vbo       uint32
	ebo       uint32
	mvpLoc    int32
	colourLoc int32
}

func New(swapper Swapper, vertexSource, fragmentSource string) *OpenGLRenderer {
	return &OpenGLRenderer{
		swapper:        swapper,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
}

func (r *OpenGLRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(r.vertexSource, r.fragmentSource)
	if err != nil {
		return err
	}
	r.program = program
	r.mvpLoc = gl.GetUniformLocation(program, gl.Str("u_mvp\x00"))
	r.colourLoc = gl.GetUniformLocation(program, gl.Str("u_colour\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	vertexSize := int(unsafe.Sizeof(math.Vertex3D{}))
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*vertexSize, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)

	gl.Viewport(0, 0, int32(appWidth), int32(appHeight))
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if r.program == 0 {
		return nil
	}
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint16) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (r *OpenGLRenderer) BeginFrame(deltaTime float64, clearColour math.Vec4) error {
	gl.ClearColor(clearColour.X, clearColour.Y, clearColour.Z, clearColour.W)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	return nil
}

func (r *OpenGLRenderer) DrawQuad(mvp math.Mat4, colour math.Vec4) error {
	// Mat4 is column-major already, no transpose.
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp.Data[0])
	gl.Uniform4f(r.colourLoc, colour.X, colour.Y, colour.Z, colour.W)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
	return nil
}

func (r *OpenGLRenderer) EndFrame(deltaTime float64) error {
	r.swapper.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x", code)
	}
	return nil
}

func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: failed to link program: %s", core.ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", core.ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
