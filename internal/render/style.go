package render

// stylesheet is embedded in every card. Colors follow the GitHub Primer
// palette and switch with prefers-color-scheme.
const stylesheet = `
:root {
    --border-color: #d1d9e0;
    --fgColor-default: #1f2328;
    --fgColor-accent: #0969da;
    --fgColor-muted: #59636e;
    --fgColor-success: #1a7f37;
    --fgColor-danger: #d1242f;
    --fgColor-done: #8250df;
    --bgColor-neutral-muted: #818b981f;
    --bgColor-success: #1f883d;
    --text-large: 1rem;
    --text-medium: 0.875rem;
    --text-small: 0.75rem;
    --text-weight-normal: 400;
    --text-weight-semibold: 600;
}

text {
    font-family: Arial, sans-serif;
    font-size: var(--text-medium);
    fill: var(--fgColor-default);
}

text.title {
    font-size: var(--text-large);
    font-weight: var(--text-weight-semibold);
}

text.title-muted {
    fill: var(--fgColor-muted);
    font-size: var(--text-large);
    font-weight: var(--text-weight-normal);
}

text.small {
    font-size: var(--text-small);
    font-weight: var(--text-weight-normal);
}

text.muted {
    fill: var(--fgColor-muted);
    font-size: var(--text-small);
}

text.additions {
    fill: var(--fgColor-success);
    font-size: var(--text-small);
}

text.deletions {
    fill: var(--fgColor-danger);
    font-size: var(--text-small);
}

text.counter {
    fill: var(--fgColor-muted);
    font-size: 40px;
    text-anchor: middle;
}

text.chip {
    font-size: var(--text-small);
    font-weight: var(--text-weight-semibold);
    text-anchor: middle;
}

text.status-chip {
    font-size: var(--text-medium);
    font-weight: var(--text-weight-semibold);
    text-anchor: middle;
}

rect.labelBg {
    fill-opacity: 1.0;
}

rect.card {
    fill: none;
    stroke: var(--border-color);
    stroke-width: 1.5px;
}

rect.progress-bg {
    fill: var(--bgColor-neutral-muted);
}

rect.progress-fill {
    fill: var(--bgColor-success);
}

circle.avatar-ring {
    fill: none;
    stroke: var(--border-color);
    stroke-width: 1px;
}

.icon-open {
    fill: var(--fgColor-success);
}

.icon-closed {
    fill: var(--fgColor-muted);
}

.icon-completed {
    fill: var(--fgColor-done);
}

.icon-danger {
    fill: var(--fgColor-danger);
}

.icon-muted {
    fill: var(--fgColor-muted);
}

@media (prefers-color-scheme: dark) {
    :root {
        --border-color: #3d444d;
        --fgColor-default: #d1d7e0;
        --fgColor-muted: #9198a1;
        --fgColor-accent: #478be6;
        --fgColor-success: #57ab5a;
        --fgColor-danger: #e5534b;
        --fgColor-done: #986ee2;
        --bgColor-neutral-muted: #656c7633;
        --bgColor-success: #347d39;
    }

    rect.labelBg {
        fill-opacity: 0.2;
    }
}
`
