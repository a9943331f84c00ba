// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procShowWindow         = user32.NewProc("ShowWindow")
	procUpdateWindow       = user32.NewProc("UpdateWindow")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
)

const (
	csOwnDC = 0x0020

	wsOverlappedWindow = 0x00CF0000

	swShow = 5

	wmDestroy = 0x0002
	wmClose   = 0x0010
	wmQuit    = 0x0012

	pmRemove = 0x0001

	idcArrow = 32512
)

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type point struct {
	X int32
	Y int32
}

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Window is a fixed-size Win32 window, just enough to host a DXGI
// swapchain for this smoke test. No resize handling: the scenario
// configures the swapchain once and never reconfigures it.
type Window struct {
	hwnd uintptr
}

// NewWindow creates and shows a window of the given client size.
func NewWindow(title string, width, height int32) (*Window, error) {
	hInstance, _, _ := procGetModuleHandleW.Call(0)

	className, err := windows.UTF16PtrFromString("GfxkitClearScreenWindow")
	if err != nil {
		return nil, fmt.Errorf("class name: %w", err)
	}
	windowTitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, fmt.Errorf("window title: %w", err)
	}

	cursor, _, _ := procLoadCursorW.Call(0, uintptr(idcArrow))

	wc := wndClassExW{
		Size:      uint32(unsafe.Sizeof(wndClassExW{})),
		Style:     csOwnDC,
		WndProc:   windows.NewCallback(wndProc),
		Instance:  hInstance,
		Cursor:    cursor,
		ClassName: className,
	}
	if ret, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); ret == 0 { //nolint:gosec // G103: Win32 API
		return nil, fmt.Errorf("RegisterClassExW: %w", callErr)
	}

	style := uint32(wsOverlappedWindow)
	rc := rect{Right: width, Bottom: height}
	procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&rc)), uintptr(style), 0, 0) //nolint:errcheck,gosec // G103: Win32 API

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),   //nolint:gosec // G103: Win32 API
		uintptr(unsafe.Pointer(windowTitle)), //nolint:gosec // G103: Win32 API
		uintptr(style),
		100, 100,
		uintptr(rc.Right-rc.Left),
		uintptr(rc.Bottom-rc.Top),
		0, 0, hInstance, 0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("CreateWindowExW: %w", callErr)
	}

	procShowWindow.Call(hwnd, uintptr(swShow)) //nolint:errcheck,gosec // Win32 API
	procUpdateWindow.Call(hwnd)                //nolint:errcheck,gosec // Win32 API

	w := &Window{hwnd: hwnd}
	pumpEvents()
	return w, nil
}

// Handle returns the native HWND.
func (w *Window) Handle() uintptr { return w.hwnd }

// Destroy destroys the window.
func (w *Window) Destroy() {
	if w.hwnd != 0 {
		procDestroyWindow.Call(w.hwnd) //nolint:errcheck,gosec // Win32 API
		w.hwnd = 0
	}
}

// pumpEvents drains pending messages so the window finishes creating and
// stays responsive for the duration of the fixed 10-frame render loop.
func pumpEvents() {
	var m msg
	for {
		ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, uintptr(pmRemove)) //nolint:gosec // G103: Win32 API
		if ret == 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m))) //nolint:errcheck,gosec // G103: Win32 API
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m))) //nolint:errcheck,gosec // G103: Win32 API
	}
}

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	switch message {
	case wmDestroy, wmClose:
		return 0
	default:
		ret, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
		return ret
	}
}
