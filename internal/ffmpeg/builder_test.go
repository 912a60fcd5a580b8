package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/probe"
)

// --- Helper builders ---

func testCfg() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Video1Path = "/in/a.mp4"
	cfg.Video2Path = "/in/b.mp4"
	cfg.ShowFfmpegFPS = false
	return &cfg
}

func testMeta(w, h int, dur float64, audio bool) probe.VideoMeta {
	return probe.VideoMeta{Width: w, Height: h, Duration: dur, FPS: 30, HasAudio: audio}
}

func testPlan(t *testing.T, m1, m2 probe.VideoMeta, opts planner.Options) *planner.ProcessingPlan {
	t.Helper()
	plan, err := planner.BuildPlan(m1, m2, opts)
	require.NoError(t, err)
	return plan
}

func testOpts() planner.Options {
	return planner.Options{
		Layout:         config.LayoutSideBySide,
		DurationSource: config.Video1,
		LoopVideos:     true,
		AudioSource:    config.Video1,
		QualityPreset:  config.PresetFast,
		Accel:          config.AccelSoftware,
		CoreCount:      4,
	}
}

// --- Filter graph rendering ---

func TestRenderFilterGraph_TrimAndPadChain(t *testing.T) {
	// video_1 matches its half box exactly (no stages); video_2 is trimmed
	// from 20s to 10s and centered without scaling.
	plan := testPlan(t, testMeta(960, 1080, 10, true), testMeta(640, 360, 20, true), testOpts())

	want := "[0:v]fps=30[v0];" +
		"[1:v]trim=duration=10.000,setpts=PTS-STARTPTS,pad=960:1080:160:360:color=black,fps=30[v1];" +
		"[v0][v1]hstack=inputs=2[vout]"
	assert.Equal(t, want, RenderFilterGraph(plan))
}

func TestRenderFilterGraph_LoopChain(t *testing.T) {
	plan := testPlan(t, testMeta(960, 1080, 10, true), testMeta(1280, 720, 4, true), testOpts())

	graph := RenderFilterGraph(plan)
	assert.Contains(t, graph, "loop=loop=-1:size=32767:start=0")
	assert.Contains(t, graph, "trim=duration=10.000")
	assert.Contains(t, graph, "scale=960:540:flags=fast_bilinear")

	// Loop must precede trim in the chain.
	assert.Less(t, strings.Index(graph, "loop="), strings.Index(graph, "trim="))
}

func TestRenderFilterGraph_VStack(t *testing.T) {
	opts := testOpts()
	opts.Layout = config.LayoutTopBottom
	plan := testPlan(t, testMeta(1920, 1080, 10, true), testMeta(1920, 1080, 10, true), opts)

	assert.Contains(t, RenderFilterGraph(plan), "vstack=inputs=2[vout]")
}

func TestRenderFilterGraph_IdentityOmitsScale(t *testing.T) {
	plan := testPlan(t, testMeta(960, 1080, 10, true), testMeta(960, 1080, 10, true), testOpts())

	graph := RenderFilterGraph(plan)
	assert.NotContains(t, graph, "scale=")
	assert.NotContains(t, graph, "pad=")
}

// --- Argument assembly ---

func TestBuild_Skeleton(t *testing.T) {
	cfg := testCfg()
	plan := testPlan(t, testMeta(1920, 1080, 10, true), testMeta(640, 360, 20, true), testOpts())

	args := Build(cfg, plan, "/out/combined.mp4")

	assert.Equal(t, "ffmpeg", args[0])
	assert.Contains(t, args, "-filter_complex")
	assert.Contains(t, args, "[vout]")
	assert.Contains(t, args, "libx264")
	assert.Equal(t, "/out/combined.mp4", args[len(args)-1])

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-i /in/a.mp4 -i /in/b.mp4")
	assert.Contains(t, joined, "-map [vout] -map 0:a:0")
	assert.Contains(t, joined, "-t 10.000")
	assert.Contains(t, joined, "-vsync cfr -r 30")
	assert.Contains(t, joined, "-c:a aac -b:a 128k -ac 2 -ar 48000")
	assert.Contains(t, joined, "-movflags +faststart")
	assert.Contains(t, joined, "-threads 4")
}

func TestBuild_AudioFromVideo2(t *testing.T) {
	opts := testOpts()
	opts.AudioSource = config.Video2
	plan := testPlan(t, testMeta(1280, 720, 10, true), testMeta(1280, 720, 10, true), opts)

	args := Build(testCfg(), plan, "/out/o.mp4")
	assert.Contains(t, strings.Join(args, " "), "-map 1:a:0")
}

func TestBuild_SilentAudioAddsLavfiInput(t *testing.T) {
	plan := testPlan(t, testMeta(1280, 720, 10, false), testMeta(1280, 720, 10, false), testOpts())
	require.True(t, plan.Audio.Silent)

	joined := strings.Join(Build(testCfg(), plan, "/out/o.mp4"), " ")
	assert.Contains(t, joined, "-f lavfi -i "+silentAudioSource)
	assert.Contains(t, joined, "-map 2:a:0")
}

func TestBuild_VerboseLoglevel(t *testing.T) {
	cfg := testCfg()
	cfg.Verbose = true
	plan := testPlan(t, testMeta(1280, 720, 10, true), testMeta(1280, 720, 10, true), testOpts())

	joined := strings.Join(Build(cfg, plan, "/out/o.mp4"), " ")
	assert.Contains(t, joined, "-loglevel info")
	assert.Contains(t, joined, "-stats")
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "10.000", formatSeconds(10))
	assert.Equal(t, "3.142", formatSeconds(3.14159))
	assert.Equal(t, "0.500", formatSeconds(0.5))
}
