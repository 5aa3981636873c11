package gpu3d

import "github.com/jetsetilly/testds/hardware/spec"

// a worker renders one 48 scanline block in the background. workers are
// long-lived: they are created once and coordinate with DrawScanline()
// through their channels, rather than being created and destroyed every
// frame
type worker struct {
	// the first line of the block to render
	start chan int

	// the worker signals completion of the block on this channel
	done chan bool
}

func (ren *Renderer) startWorkers() {
	for i := range ren.workers {
		ren.workers[i] = worker{
			start: make(chan int),
			done:  make(chan bool),
		}

		go func(w worker) {
			for {
				select {
				case line := <-w.start:
					for l := line; l < line+spec.BlockLines; l++ {
						ren.drawScanline(l)
					}
					w.done <- true
				case <-ren.quit:
					return
				}
			}
		}(ren.workers[i])
	}
}

// DrawScanline advances the renderer to the given scanline. In immediate
// mode the scanline is rendered synchronously. In background mode the whole
// frame is rendered in advance: reaching line 0 dispatches all four block
// workers, and reaching the last line of a block waits for that block's
// worker to finish before output for the block can be consumed.
//
// Background rendering can run ahead of the consumer like this because the
// geometry buffers can only be swapped at V-blank. Nothing the consumer does
// mid-frame can change what the workers will produce.
func (ren *Renderer) DrawScanline(line int) {
	if !ren.threaded {
		ren.drawScanline(line)
		return
	}

	if line == 0 {
		for i := range ren.workers {
			// the worker must have finished any previous block before it can
			// be given a new one
			if ren.pending[i] {
				<-ren.workers[i].done
			}
			ren.pending[i] = true
			ren.workers[i].start <- i * spec.BlockLines
		}
	} else if line%spec.BlockLines == spec.BlockLines-1 {
		i := line / spec.BlockLines
		if ren.pending[i] {
			<-ren.workers[i].done
			ren.pending[i] = false
		}
	}
}

// End joins any outstanding block workers and stops them. The renderer must
// not be used after End() has been called.
func (ren *Renderer) End() {
	for i := range ren.workers {
		if ren.pending[i] {
			<-ren.workers[i].done
			ren.pending[i] = false
		}
	}
	close(ren.quit)
}
