// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Command clearscreen is the clear-screen smoke test: table-model device,
// default graphics queue, 2-backbuffer 1280x720 swapchain. Ten frames,
// each acquiring a backbuffer, clearing it, and presenting it, with
// explicit Uninitialized->RenderAttachment and RenderAttachment->Present
// barriers around the render pass (gfxkit does no automatic resource-state
// tracking, so every frame sequences these itself).
package main

import (
	"fmt"
	"os"
	"runtime"

	wgpu "github.com/gfxkit/gfxkit"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	frameCount   = 10
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SUCCESS: clear-screen smoke test passed!")
}

func run() error {
	fmt.Println("=== Clear-Screen Smoke Test ===")

	fmt.Print("1. Creating window... ")
	window, err := NewWindow("gfxkit clear-screen smoke test", windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	fmt.Println("OK")

	fmt.Print("2. Creating instance (table-model only)... ")
	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: wgpu.BackendsDX12})
	if err != nil {
		return fmt.Errorf("creating instance: %w", err)
	}
	defer instance.Release()
	fmt.Println("OK")

	fmt.Print("3. Creating surface... ")
	surface, err := instance.CreateSurface(0, window.Handle())
	if err != nil {
		return fmt.Errorf("creating surface: %w", err)
	}
	defer surface.Release()
	fmt.Println("OK")

	fmt.Print("4. Requesting adapter... ")
	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return fmt.Errorf("requesting adapter: %w", err)
	}
	defer adapter.Release()
	fmt.Printf("OK (%s)\n", adapter.Info().Name)

	fmt.Print("5. Requesting device and default queue... ")
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("requesting device: %w", err)
	}
	defer device.Release()
	queue := device.Queue()
	fmt.Println("OK")

	fmt.Print("6. Configuring 2-backbuffer swapchain... ")
	surfaceConfig := &wgpu.SurfaceConfiguration{
		Width:       windowWidth,
		Height:      windowHeight,
		Format:      wgpu.TextureFormatRGBA8Unorm,
		Usage:       wgpu.TextureUsageRenderAttachment,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
	}
	if err := surface.Configure(device, surfaceConfig); err != nil {
		return fmt.Errorf("configuring surface: %w", err)
	}
	fmt.Println("OK")

	fmt.Println()
	fmt.Println("=== Rendering 10 frames ===")
	for i := 0; i < frameCount; i++ {
		if err := renderFrame(device, queue, surface); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		fmt.Printf("Frame %d presented\n", i)
	}

	fmt.Println()
	fmt.Println("=== Clear-Screen Smoke Test PASSED ===")
	return nil
}

func renderFrame(device *wgpu.Device, queue *wgpu.Queue, surface *wgpu.Surface) error {
	surfaceTexture, suboptimal, err := surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	if suboptimal {
		fmt.Println("   (surface suboptimal, continuing)")
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}
	defer view.Release()

	encoder, err := device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "clearscreen frame"})
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}

	encoder.TransitionTextures([]wgpu.TextureBarrier{
		{Texture: surfaceTexture, OldUsage: 0, NewUsage: wgpu.TextureUsageRenderAttachment},
	})

	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "clear pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}
	pass.End()

	encoder.TransitionTextures([]wgpu.TextureBarrier{
		{Texture: surfaceTexture, OldUsage: wgpu.TextureUsageRenderAttachment, NewUsage: 0},
	})

	cmdBuffer, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}

	if err := queue.Submit(cmdBuffer); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	return surface.Present(surfaceTexture)
}
